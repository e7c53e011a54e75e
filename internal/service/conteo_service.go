package service

import (
	"context"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConteoService interface {
	// Registrar appends one counting batch. Items with cantidad 0 are skipped
	// and the remaining rows go in as one insert. Repeated submissions for the
	// same denomination accumulate as new rows, they never replace old ones.
	Registrar(ctx context.Context, actor Actor, cuadreID uuid.UUID, tipo string, req dto.RegistrarConteoRequest) (*dto.ConteoResponse, error)
	Listar(ctx context.Context, actor Actor, cuadreID uuid.UUID, tipo string) (*dto.ConteoResponse, error)
}

type conteoService struct {
	planillaRepo repository.PlanillaRepository
	denomRepo    repository.DenominacionRepository
}

func NewConteoService(planillaRepo repository.PlanillaRepository, denomRepo repository.DenominacionRepository) ConteoService {
	return &conteoService{planillaRepo: planillaRepo, denomRepo: denomRepo}
}

func (s *conteoService) Registrar(ctx context.Context, actor Actor, cuadreID uuid.UUID, tipo string, req dto.RegistrarConteoRequest) (*dto.ConteoResponse, error) {
	if tipo != model.TipoMoneda && tipo != model.TipoBillete {
		return nil, ErrTipoConteoInvalido
	}
	p, err := s.planillaRepo.FindByID(ctx, cuadreID)
	if err != nil {
		return nil, ErrPlanillaNoEncontrada
	}
	if err := autorizarMutacion(actor, p); err != nil {
		return nil, err
	}

	rows := make([]model.CuadreDenominacion, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Cantidad == 0 {
			continue
		}
		// An unknown denomination rejects the whole batch, no partial insert.
		if !model.DenominacionValida(tipo, item.Denominacion) {
			return nil, ErrDenominacionInvalida
		}
		denom := decimal.NewFromInt(item.Denominacion)
		rows = append(rows, model.CuadreDenominacion{
			CuadreID:     cuadreID,
			Tipo:         tipo,
			Denominacion: denom,
			Cantidad:     item.Cantidad,
			Total:        denom.Mul(decimal.NewFromInt(int64(item.Cantidad))),
		})
	}

	if err := s.denomRepo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}
	return s.buildConteo(ctx, cuadreID, tipo)
}

func (s *conteoService) Listar(ctx context.Context, actor Actor, cuadreID uuid.UUID, tipo string) (*dto.ConteoResponse, error) {
	if tipo != model.TipoMoneda && tipo != model.TipoBillete {
		return nil, ErrTipoConteoInvalido
	}
	p, err := s.planillaRepo.FindByID(ctx, cuadreID)
	if err != nil {
		return nil, ErrPlanillaNoEncontrada
	}
	if err := autorizarLectura(actor, p); err != nil {
		return nil, err
	}
	return s.buildConteo(ctx, cuadreID, tipo)
}

func (s *conteoService) buildConteo(ctx context.Context, cuadreID uuid.UUID, tipo string) (*dto.ConteoResponse, error) {
	rows, err := s.denomRepo.ListByCuadre(ctx, cuadreID, tipo)
	if err != nil {
		return nil, err
	}
	resp := &dto.ConteoResponse{
		CuadreID:  cuadreID.String(),
		Tipo:      tipo,
		Registros: make([]dto.DenominacionResponse, len(rows)),
		Total:     decimal.Zero,
	}
	for i, row := range rows {
		resp.Registros[i] = dto.DenominacionResponse{
			ID:           row.ID.String(),
			Denominacion: row.Denominacion,
			Cantidad:     row.Cantidad,
			Total:        row.Total,
		}
		resp.Total = resp.Total.Add(row.Total)
	}
	return resp, nil
}
