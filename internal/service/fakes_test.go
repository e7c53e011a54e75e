package service

import (
	"context"
	"errors"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/worker"

	"github.com/google/uuid"
)

// ── In-memory repositories ───────────────────────────────────────────────────

type memPlanillaRepo struct {
	planillas map[uuid.UUID]*model.CuadrePlanilla
}

func newMemPlanillaRepo() *memPlanillaRepo {
	return &memPlanillaRepo{planillas: make(map[uuid.UUID]*model.CuadrePlanilla)}
}

func (r *memPlanillaRepo) Create(_ context.Context, p *model.CuadrePlanilla) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	copia := *p
	r.planillas[p.ID] = &copia
	return nil
}

func (r *memPlanillaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CuadrePlanilla, error) {
	p, ok := r.planillas[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copia := *p
	return &copia, nil
}

func (r *memPlanillaRepo) Update(_ context.Context, p *model.CuadrePlanilla) error {
	if _, ok := r.planillas[p.ID]; !ok {
		return errors.New("record not found")
	}
	copia := *p
	r.planillas[p.ID] = &copia
	return nil
}

func (r *memPlanillaRepo) List(_ context.Context, filter repository.PlanillaFilter) ([]model.CuadrePlanilla, error) {
	var out []model.CuadrePlanilla
	for _, p := range r.planillas {
		if filter.PersonalID != nil && p.PersonalID != *filter.PersonalID {
			continue
		}
		if filter.Fecha != nil && !p.Fecha.Equal(*filter.Fecha) {
			continue
		}
		if filter.SoloCerradas && !p.Cerrado {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

type memDenomRepo struct {
	rows []model.CuadreDenominacion
}

func (r *memDenomRepo) CreateBatch(_ context.Context, rows []model.CuadreDenominacion) error {
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
		rows[i].CreatedAt = time.Now()
	}
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *memDenomRepo) ListByCuadre(_ context.Context, cuadreID uuid.UUID, tipo string) ([]model.CuadreDenominacion, error) {
	var out []model.CuadreDenominacion
	for _, row := range r.rows {
		if row.CuadreID == cuadreID && row.Tipo == tipo {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memDenomRepo) ListByCuadres(_ context.Context, cuadreIDs []uuid.UUID) ([]model.CuadreDenominacion, error) {
	ids := make(map[uuid.UUID]bool, len(cuadreIDs))
	for _, id := range cuadreIDs {
		ids[id] = true
	}
	var out []model.CuadreDenominacion
	for _, row := range r.rows {
		if ids[row.CuadreID] {
			out = append(out, row)
		}
	}
	return out, nil
}

type memPersonalRepo struct {
	personal map[string]*model.PersonalAutorizado
}

func newMemPersonalRepo() *memPersonalRepo {
	return &memPersonalRepo{personal: make(map[string]*model.PersonalAutorizado)}
}

func (r *memPersonalRepo) Create(_ context.Context, p *model.PersonalAutorizado) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.personal[p.Ultimos4] = p
	return nil
}

func (r *memPersonalRepo) FindActivoPorCodigo(_ context.Context, codigo string) (*model.PersonalAutorizado, error) {
	p, ok := r.personal[codigo]
	if !ok || !p.Activo {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *memPersonalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PersonalAutorizado, error) {
	for _, p := range r.personal {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

type memOficialRepo struct {
	rows      []model.PlanillaOficial
	failInser bool
}

func (r *memOficialRepo) Create(_ context.Context, p *model.PlanillaOficial) error {
	if r.failInser {
		return errors.New("insert failed")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.rows = append(r.rows, *p)
	return nil
}

func (r *memOficialRepo) List(_ context.Context, fecha *time.Time) ([]model.PlanillaOficial, error) {
	if fecha == nil {
		return r.rows, nil
	}
	var out []model.PlanillaOficial
	for _, row := range r.rows {
		if row.Fecha.Equal(*fecha) {
			out = append(out, row)
		}
	}
	return out, nil
}

// ── Notification capture ─────────────────────────────────────────────────────

type notificadorSpy struct {
	payloads []worker.CierrePayload
	fail     bool
}

func (n *notificadorSpy) EncolarCierre(_ context.Context, p worker.CierrePayload) error {
	if n.fail {
		return errors.New("cola no disponible")
	}
	n.payloads = append(n.payloads, p)
	return nil
}

// Test actors.

func actorEstandar() Actor {
	return Actor{PersonalID: uuid.New(), Nombre: "Carlos Ruiz", Rol: model.RolEstandar}
}

func actorAdmin() Actor {
	return Actor{PersonalID: uuid.New(), Nombre: "Admin", Rol: model.RolAdmin}
}
