package service

import (
	"context"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CierreNotificador enqueues the closing notification job. Satisfied by
// *worker.Dispatcher; nil disables notifications (tests, degraded mode).
type CierreNotificador interface {
	EncolarCierre(ctx context.Context, payload worker.CierrePayload) error
}

type CuadreService interface {
	// Resumen recomputes the four derived quantities from the persisted rows.
	// Nothing is cached: a row entered after an earlier view was rendered is
	// always reflected on the next read.
	Resumen(ctx context.Context, actor Actor, id uuid.UUID) (*dto.ResumenResponse, error)
	// Cerrar closes the planilla: allowed for an admin actor, or for the
	// owning actor when |diferencia| <= ToleranciaCierre. Reclosing
	// re-persists the flag and a fresh variance snapshot.
	Cerrar(ctx context.Context, actor Actor, id uuid.UUID) (*dto.CerrarResponse, error)
}

type cuadreService struct {
	planillaRepo repository.PlanillaRepository
	denomRepo    repository.DenominacionRepository
	notificador  CierreNotificador
}

func NewCuadreService(planillaRepo repository.PlanillaRepository, denomRepo repository.DenominacionRepository, notificador CierreNotificador) CuadreService {
	return &cuadreService{planillaRepo: planillaRepo, denomRepo: denomRepo, notificador: notificador}
}

func (s *cuadreService) Resumen(ctx context.Context, actor Actor, id uuid.UUID) (*dto.ResumenResponse, error) {
	p, err := s.planillaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPlanillaNoEncontrada
	}
	if err := autorizarLectura(actor, p); err != nil {
		return nil, err
	}
	derivados, err := s.derivados(ctx, p)
	if err != nil {
		return nil, err
	}

	return &dto.ResumenResponse{
		PlanillaID:    p.ID.String(),
		Empresa:       p.Empresa,
		Fecha:         p.Fecha.Format("2006-01-02"),
		Vehiculo:      p.Vehiculo,
		PlanillaNo:    p.PlanillaNo,
		PlanillaValor: p.PlanillaValor,
		Agotado:       p.Agotado,

		TotalMonedas:  derivados.TotalMonedas,
		TotalBilletes: derivados.TotalBilletes,

		Novedades: toNovedadesResponse(p),

		TotalEfectivo:    derivados.TotalEfectivo,
		PlanillaAjustada: derivados.PlanillaAjustada,
		TotalLegalizado:  derivados.TotalLegalizado,
		Diferencia:       derivados.Diferencia,

		Veredicto:   veredicto(derivados.Diferencia),
		PuedeCerrar: actor.EsAdmin() || dentroDeTolerancia(derivados.Diferencia),

		Cerrado:             p.Cerrado,
		DiferenciaCierre:    p.DiferenciaCierre,
		CierreConTolerancia: p.CierreConTolerancia,
	}, nil
}

func (s *cuadreService) Cerrar(ctx context.Context, actor Actor, id uuid.UUID) (*dto.CerrarResponse, error) {
	p, err := s.planillaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPlanillaNoEncontrada
	}
	// Reclosing an already-closed planilla is a mutation like any other:
	// refused for non-admin actors, permitted (and idempotent) for admins.
	if err := autorizarMutacion(actor, p); err != nil {
		return nil, err
	}

	derivados, err := s.derivados(ctx, p)
	if err != nil {
		return nil, err
	}
	if !actor.EsAdmin() && !dentroDeTolerancia(derivados.Diferencia) {
		return nil, ErrFueraDeTolerancia
	}

	diferencia := derivados.Diferencia
	p.Cerrado = true
	p.DiferenciaCierre = &diferencia
	p.CierreConTolerancia = !diferencia.IsZero() && dentroDeTolerancia(diferencia)

	if err := s.planillaRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	// Best effort: a failed notification never undoes the closing.
	if s.notificador != nil {
		payload := worker.CierrePayload{
			PlanillaID:    p.ID.String(),
			Empresa:       p.Empresa,
			PlanillaNo:    p.PlanillaNo,
			Fecha:         p.Fecha.Format("2006-01-02"),
			Usuario:       actor.Nombre,
			Diferencia:    diferencia.String(),
			ConTolerancia: p.CierreConTolerancia,
		}
		if err := s.notificador.EncolarCierre(ctx, payload); err != nil {
			log.Warn().Err(err).Str("planilla_id", p.ID.String()).Msg("no se pudo encolar la notificación de cierre")
		}
	}

	return &dto.CerrarResponse{
		PlanillaID:          p.ID.String(),
		Cerrado:             true,
		DiferenciaCierre:    diferencia,
		CierreConTolerancia: p.CierreConTolerancia,
	}, nil
}

func (s *cuadreService) derivados(ctx context.Context, p *model.CuadrePlanilla) (Derivados, error) {
	rows, err := s.denomRepo.ListByCuadres(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return Derivados{}, err
	}
	return calcularDerivados(p, rows), nil
}
