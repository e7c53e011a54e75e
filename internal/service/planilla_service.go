package service

import (
	"context"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanillaService interface {
	Crear(ctx context.Context, actor Actor, req dto.CrearPlanillaRequest) (*dto.PlanillaResponse, error)
	ObtenerPorID(ctx context.Context, actor Actor, id uuid.UUID) (*dto.PlanillaResponse, error)
	// Listar returns the actor-visible manifests: admins see all, the rest
	// only their own. fecha filters by exact date when present.
	Listar(ctx context.Context, actor Actor, fecha *string) ([]dto.PlanillaResponse, error)
	Estadisticas(ctx context.Context, actor Actor) (*dto.EstadisticasResponse, error)
	GuardarNovedades(ctx context.Context, actor Actor, id uuid.UUID, req dto.GuardarNovedadesRequest) (*dto.PlanillaResponse, error)
}

type planillaService struct {
	repo repository.PlanillaRepository
}

func NewPlanillaService(repo repository.PlanillaRepository) PlanillaService {
	return &planillaService{repo: repo}
}

func (s *planillaService) Crear(ctx context.Context, actor Actor, req dto.CrearPlanillaRequest) (*dto.PlanillaResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, err
	}

	// New manifests open with every novedad at zero.
	p := &model.CuadrePlanilla{
		PersonalID:    actor.PersonalID,
		Empresa:       req.Empresa,
		Fecha:         fecha,
		Vehiculo:      req.Vehiculo,
		PlanillaNo:    req.PlanillaNo,
		PlanillaValor: req.PlanillaValor,
		Cerrado:       false,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	resp := toPlanillaResponse(p)
	if resp.Usuario == "" {
		resp.Usuario = actor.Nombre
	}
	return &resp, nil
}

func (s *planillaService) ObtenerPorID(ctx context.Context, actor Actor, id uuid.UUID) (*dto.PlanillaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPlanillaNoEncontrada
	}
	if err := autorizarLectura(actor, p); err != nil {
		return nil, err
	}
	resp := toPlanillaResponse(p)
	return &resp, nil
}

func (s *planillaService) Listar(ctx context.Context, actor Actor, fecha *string) ([]dto.PlanillaResponse, error) {
	planillas, err := s.listarVisibles(ctx, actor, fecha)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PlanillaResponse, len(planillas))
	for i := range planillas {
		resp[i] = toPlanillaResponse(&planillas[i])
	}
	return resp, nil
}

func (s *planillaService) Estadisticas(ctx context.Context, actor Actor) (*dto.EstadisticasResponse, error) {
	planillas, err := s.listarVisibles(ctx, actor, nil)
	if err != nil {
		return nil, err
	}
	stats := &dto.EstadisticasResponse{Total: len(planillas), ValorTotal: decimal.Zero}
	for i := range planillas {
		if planillas[i].Cerrado {
			stats.Cerradas++
		} else {
			stats.Abiertas++
		}
		stats.ValorTotal = stats.ValorTotal.Add(planillas[i].PlanillaValor)
	}
	return stats, nil
}

func (s *planillaService) GuardarNovedades(ctx context.Context, actor Actor, id uuid.UUID, req dto.GuardarNovedadesRequest) (*dto.PlanillaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPlanillaNoEncontrada
	}
	if err := autorizarMutacion(actor, p); err != nil {
		return nil, err
	}
	// Rejected, not clamped: the stored field set keeps its previous values.
	if req.Agotado.GreaterThan(p.PlanillaValor) {
		return nil, ErrAgotadoSuperaValor
	}

	p.DevPaseo = req.DevPaseo
	p.DevMala = req.DevMala
	p.ConsignacionBrinks = req.ConsignacionBrinks
	p.ConsignacionBanco = req.ConsignacionBanco
	p.RedespachoManana = req.RedespachoManana
	p.Peajes = req.Peajes
	p.Combustible = req.Combustible
	p.Fletes = req.Fletes
	p.Acompanamiento = req.Acompanamiento
	p.GastoOficina = req.GastoOficina
	p.DescuentoClientes = req.DescuentoClientes
	p.Vale = req.Vale
	p.Agotado = req.Agotado

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := toPlanillaResponse(p)
	return &resp, nil
}

func (s *planillaService) listarVisibles(ctx context.Context, actor Actor, fecha *string) ([]model.CuadrePlanilla, error) {
	filter := repository.PlanillaFilter{}
	if !actor.EsAdmin() {
		id := actor.PersonalID
		filter.PersonalID = &id
	}
	if fecha != nil && *fecha != "" {
		f, err := time.Parse("2006-01-02", *fecha)
		if err != nil {
			return nil, err
		}
		filter.Fecha = &f
	}
	return s.repo.List(ctx, filter)
}

// toPlanillaResponse maps a model to its DTO. The owner name falls back to the
// empty string when the Personal relation was not preloaded.
func toPlanillaResponse(p *model.CuadrePlanilla) dto.PlanillaResponse {
	resp := dto.PlanillaResponse{
		ID:                  p.ID.String(),
		Empresa:             p.Empresa,
		Fecha:               p.Fecha.Format("2006-01-02"),
		Vehiculo:            p.Vehiculo,
		PlanillaNo:          p.PlanillaNo,
		PlanillaValor:       p.PlanillaValor,
		Novedades:           toNovedadesResponse(p),
		Cerrado:             p.Cerrado,
		DiferenciaCierre:    p.DiferenciaCierre,
		CierreConTolerancia: p.CierreConTolerancia,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
	if p.Personal != nil {
		resp.Usuario = p.Personal.Nombre
		resp.UsuarioCodigo = p.Personal.Ultimos4
	}
	return resp
}

func toNovedadesResponse(p *model.CuadrePlanilla) dto.NovedadesResponse {
	return dto.NovedadesResponse{
		DevPaseo:           p.DevPaseo,
		DevMala:            p.DevMala,
		ConsignacionBrinks: p.ConsignacionBrinks,
		ConsignacionBanco:  p.ConsignacionBanco,
		RedespachoManana:   p.RedespachoManana,
		Peajes:             p.Peajes,
		Combustible:        p.Combustible,
		Fletes:             p.Fletes,
		Acompanamiento:     p.Acompanamiento,
		GastoOficina:       p.GastoOficina,
		DescuentoClientes:  p.DescuentoClientes,
		Vale:               p.Vale,
		Agotado:            p.Agotado,
	}
}
