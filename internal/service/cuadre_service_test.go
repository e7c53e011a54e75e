package service

import (
	"context"
	"testing"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func nuevaPlanilla(t *testing.T, repo *memPlanillaRepo, actor Actor, valor int64) *model.CuadrePlanilla {
	t.Helper()
	p := &model.CuadrePlanilla{
		PersonalID:    actor.PersonalID,
		Empresa:       "Coopetran",
		Fecha:         time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Vehiculo:      103,
		PlanillaNo:    "PL-4410",
		PlanillaValor: d(valor),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func contar(t *testing.T, denomRepo *memDenomRepo, p *model.CuadrePlanilla, tipo string, denom int64, cantidad int) {
	t.Helper()
	require.NoError(t, denomRepo.CreateBatch(context.Background(), []model.CuadreDenominacion{{
		CuadreID:     p.ID,
		Tipo:         tipo,
		Denominacion: d(denom),
		Cantidad:     cantidad,
		Total:        d(denom * int64(cantidad)),
	}}))
}

func TestResumenFaltante(t *testing.T) {
	// expected=100000, agotado=0, 50000x1 billete, 1000x10 monedas
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 50000, 1)
	contar(t, denomRepo, p, model.TipoMoneda, 1000, 10)

	svc := NewCuadreService(repo, denomRepo, nil)
	resumen, err := svc.Resumen(context.Background(), actor, p.ID)
	require.NoError(t, err)

	assert.True(t, resumen.TotalEfectivo.Equal(d(60000)))
	assert.True(t, resumen.PlanillaAjustada.Equal(d(100000)))
	assert.True(t, resumen.TotalLegalizado.Equal(d(60000)))
	assert.True(t, resumen.Diferencia.Equal(d(-40000)))
	assert.Equal(t, VeredictoFalta, resumen.Veredicto)
	assert.False(t, resumen.PuedeCerrar)

	_, err = svc.Cerrar(context.Background(), actor, p.ID)
	assert.ErrorIs(t, err, ErrFueraDeTolerancia)
}

func TestCierreExacto(t *testing.T) {
	// expected=100000, agotado=20000, efectivo=80000 → diferencia 0
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	p.Agotado = d(20000)
	require.NoError(t, repo.Update(context.Background(), p))
	contar(t, denomRepo, p, model.TipoBillete, 20000, 4)

	svc := NewCuadreService(repo, denomRepo, nil)
	resp, err := svc.Cerrar(context.Background(), actor, p.ID)
	require.NoError(t, err)

	assert.True(t, resp.Cerrado)
	assert.True(t, resp.DiferenciaCierre.IsZero())
	assert.False(t, resp.CierreConTolerancia)

	guardada, _ := repo.FindByID(context.Background(), p.ID)
	assert.True(t, guardada.Cerrado)
	require.NotNil(t, guardada.DiferenciaCierre)
	assert.True(t, guardada.DiferenciaCierre.IsZero())
}

func TestCierreDentroDeTolerancia(t *testing.T) {
	// efectivo=80300 sobre ajustada=80000 → diferencia 300, cierra con marca
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	p.Agotado = d(20000)
	require.NoError(t, repo.Update(context.Background(), p))
	contar(t, denomRepo, p, model.TipoBillete, 20000, 4)
	contar(t, denomRepo, p, model.TipoMoneda, 100, 3)

	svc := NewCuadreService(repo, denomRepo, nil)
	resp, err := svc.Cerrar(context.Background(), actor, p.ID)
	require.NoError(t, err)

	assert.True(t, resp.DiferenciaCierre.Equal(d(300)))
	assert.True(t, resp.CierreConTolerancia)
}

func TestPisoDePlanillaAjustada(t *testing.T) {
	// agotado > valor solo puede llegar por manipulación directa de datos;
	// el cálculo nunca produce una ajustada negativa.
	p := &model.CuadrePlanilla{
		PlanillaValor: d(100000),
		Agotado:       d(150000),
	}
	derivados := calcularDerivados(p, nil)
	assert.True(t, derivados.PlanillaAjustada.IsZero())
	assert.True(t, derivados.Diferencia.IsZero())
}

func TestToleranciaEnLosBordes(t *testing.T) {
	cases := []struct {
		diferencia int64
		dentro     bool
	}{
		{0, true},
		{500, true},
		{-500, true},
		{501, false},
		{-501, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.dentro, dentroDeTolerancia(d(tc.diferencia)), "diferencia=%d", tc.diferencia)
	}
}

func TestCierreLimiteDeTolerancia(t *testing.T) {
	// diferencia exactamente -500 cierra con marca de tolerancia
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100500)
	contar(t, denomRepo, p, model.TipoBillete, 100000, 1)

	svc := NewCuadreService(repo, denomRepo, nil)
	resp, err := svc.Cerrar(context.Background(), actor, p.ID)
	require.NoError(t, err)
	assert.True(t, resp.DiferenciaCierre.Equal(d(-500)))
	assert.True(t, resp.CierreConTolerancia)
}

func TestValeSumaYAgotadoNo(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	p.Vale = d(30000)
	p.Peajes = d(10000)
	p.Agotado = d(20000)
	require.NoError(t, repo.Update(context.Background(), p))
	contar(t, denomRepo, p, model.TipoBillete, 20000, 2)

	svc := NewCuadreService(repo, denomRepo, nil)
	resumen, err := svc.Resumen(context.Background(), actor, p.ID)
	require.NoError(t, err)

	// legalizado = 40000 efectivo + 30000 vale + 10000 peajes
	assert.True(t, resumen.TotalLegalizado.Equal(d(80000)))
	// ajustada = 100000 - 20000
	assert.True(t, resumen.PlanillaAjustada.Equal(d(80000)))
	assert.True(t, resumen.Diferencia.IsZero())
	assert.Equal(t, VeredictoPerfecto, resumen.Veredicto)
}

func TestResumenRecalculaTrasNuevosConteos(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 50000, 1)

	svc := NewCuadreService(repo, denomRepo, nil)
	r1, err := svc.Resumen(context.Background(), actor, p.ID)
	require.NoError(t, err)
	assert.True(t, r1.TotalEfectivo.Equal(d(50000)))

	contar(t, denomRepo, p, model.TipoBillete, 50000, 1)
	r2, err := svc.Resumen(context.Background(), actor, p.ID)
	require.NoError(t, err)
	assert.True(t, r2.TotalEfectivo.Equal(d(100000)))
}

func TestDerivadosNoDependenDelOrden(t *testing.T) {
	base := &model.CuadrePlanilla{PlanillaValor: d(100000)}
	rows := []model.CuadreDenominacion{
		{Tipo: model.TipoBillete, Denominacion: d(50000), Cantidad: 1, Total: d(50000)},
		{Tipo: model.TipoMoneda, Denominacion: d(500), Cantidad: 8, Total: d(4000)},
		{Tipo: model.TipoBillete, Denominacion: d(2000), Cantidad: 3, Total: d(6000)},
	}
	a := calcularDerivados(base, rows)
	invertido := []model.CuadreDenominacion{rows[2], rows[1], rows[0]}
	b := calcularDerivados(base, invertido)

	assert.True(t, a.TotalEfectivo.Equal(b.TotalEfectivo))
	assert.True(t, a.Diferencia.Equal(b.Diferencia))
}

func TestCerrarRechazaNoPropietario(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	dueno := actorEstandar()
	otro := actorEstandar()
	p := nuevaPlanilla(t, repo, dueno, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 100000, 1)

	svc := NewCuadreService(repo, denomRepo, nil)
	_, err := svc.Cerrar(context.Background(), otro, p.ID)
	assert.ErrorIs(t, err, ErrNoAutorizado)

	_, err = svc.Resumen(context.Background(), otro, p.ID)
	assert.ErrorIs(t, err, ErrNoAutorizado)
}

func TestAdminCierraFueraDeTolerancia(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	dueno := actorEstandar()
	admin := actorAdmin()
	p := nuevaPlanilla(t, repo, dueno, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 50000, 1)

	svc := NewCuadreService(repo, denomRepo, nil)
	resp, err := svc.Cerrar(context.Background(), admin, p.ID)
	require.NoError(t, err)

	assert.True(t, resp.Cerrado)
	assert.True(t, resp.DiferenciaCierre.Equal(d(-50000)))
	// Fuera de tolerancia: el cierre es forzado, no tolerado.
	assert.False(t, resp.CierreConTolerancia)
}

func TestRecierreSoloAdmin(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 100000, 1)

	svc := NewCuadreService(repo, denomRepo, nil)
	_, err := svc.Cerrar(context.Background(), actor, p.ID)
	require.NoError(t, err)

	_, err = svc.Cerrar(context.Background(), actor, p.ID)
	assert.ErrorIs(t, err, ErrPlanillaCerrada)

	resp, err := svc.Cerrar(context.Background(), actorAdmin(), p.ID)
	require.NoError(t, err)
	assert.True(t, resp.Cerrado)
}

func TestCierreEncolaNotificacion(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 100000, 1)

	spy := &notificadorSpy{}
	svc := NewCuadreService(repo, denomRepo, spy)
	_, err := svc.Cerrar(context.Background(), actor, p.ID)
	require.NoError(t, err)

	require.Len(t, spy.payloads, 1)
	assert.Equal(t, p.PlanillaNo, spy.payloads[0].PlanillaNo)
	assert.Equal(t, actor.Nombre, spy.payloads[0].Usuario)
}

func TestCierrePersisteAunqueFalleLaCola(t *testing.T) {
	repo := newMemPlanillaRepo()
	denomRepo := &memDenomRepo{}
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	contar(t, denomRepo, p, model.TipoBillete, 100000, 1)

	svc := NewCuadreService(repo, denomRepo, &notificadorSpy{fail: true})
	resp, err := svc.Cerrar(context.Background(), actor, p.ID)
	require.NoError(t, err)
	assert.True(t, resp.Cerrado)

	guardada, _ := repo.FindByID(context.Background(), p.ID)
	assert.True(t, guardada.Cerrado)
}
