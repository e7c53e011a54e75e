package service

import (
	"context"
	"testing"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarConteoAcumula(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)

	svc := NewConteoService(repo, denomRepo)
	req := dto.RegistrarConteoRequest{Items: []dto.ConteoItem{
		{Denominacion: 50000, Cantidad: 2},
		{Denominacion: 2000, Cantidad: 5},
	}}
	resp, err := svc.Registrar(context.Background(), actor, p.ID, model.TipoBillete, req)
	require.NoError(t, err)
	assert.Len(t, resp.Registros, 2)
	assert.True(t, resp.Total.Equal(d(110000)))

	// Re-registrar la misma denominación agrega filas, no reemplaza.
	resp, err = svc.Registrar(context.Background(), actor, p.ID, model.TipoBillete, dto.RegistrarConteoRequest{
		Items: []dto.ConteoItem{{Denominacion: 50000, Cantidad: 1}},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Registros, 3)
	assert.True(t, resp.Total.Equal(d(160000)))
}

func TestRegistrarConteoOmiteCantidadCero(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)

	svc := NewConteoService(repo, denomRepo)
	resp, err := svc.Registrar(context.Background(), actor, p.ID, model.TipoMoneda, dto.RegistrarConteoRequest{
		Items: []dto.ConteoItem{
			{Denominacion: 500, Cantidad: 0},
			{Denominacion: 200, Cantidad: 4},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Registros, 1)
	assert.True(t, resp.Total.Equal(d(800)))
}

func TestRegistrarConteoRechazaDenominacionInvalida(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)

	svc := NewConteoService(repo, denomRepo)
	// 1000 es moneda, no billete: el lote entero se rechaza.
	_, err := svc.Registrar(context.Background(), actor, p.ID, model.TipoBillete, dto.RegistrarConteoRequest{
		Items: []dto.ConteoItem{
			{Denominacion: 50000, Cantidad: 1},
			{Denominacion: 1000, Cantidad: 2},
		},
	})
	assert.ErrorIs(t, err, ErrDenominacionInvalida)
	assert.Empty(t, denomRepo.rows)
}

func TestRegistrarConteoTipoInvalido(t *testing.T) {
	svc := NewConteoService(newMemPlanillaRepo(), &memDenomRepo{})
	_, err := svc.Registrar(context.Background(), actorEstandar(), uuid.Nil, "cheques", dto.RegistrarConteoRequest{
		Items: []dto.ConteoItem{{Denominacion: 50000, Cantidad: 1}},
	})
	assert.ErrorIs(t, err, ErrTipoConteoInvalido)
}

func TestRegistrarConteoEnPlanillaCerrada(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	p.Cerrado = true
	require.NoError(t, repo.Update(context.Background(), p))

	svc := NewConteoService(repo, denomRepo)
	req := dto.RegistrarConteoRequest{Items: []dto.ConteoItem{{Denominacion: 50000, Cantidad: 1}}}

	_, err := svc.Registrar(context.Background(), actor, p.ID, model.TipoBillete, req)
	assert.ErrorIs(t, err, ErrPlanillaCerrada)

	// El admin sí puede seguir corrigiendo conteos.
	_, err = svc.Registrar(context.Background(), actorAdmin(), p.ID, model.TipoBillete, req)
	assert.NoError(t, err)
}

func TestListarConteoSeparaPorTipo(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 20000, 1)
	contar(t, denomRepo, p, model.TipoMoneda, 500, 10)

	svc := NewConteoService(repo, denomRepo)
	monedas, err := svc.Listar(context.Background(), actor, p.ID, model.TipoMoneda)
	require.NoError(t, err)
	assert.Len(t, monedas.Registros, 1)
	assert.True(t, monedas.Total.Equal(d(5000)))

	billetes, err := svc.Listar(context.Background(), actor, p.ID, model.TipoBillete)
	require.NoError(t, err)
	assert.True(t, billetes.Total.Equal(d(20000)))
}
