package service

import (
	"context"
	"testing"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearPlanillaInicializaNovedadesEnCero(t *testing.T) {
	repo := newMemPlanillaRepo()
	actor := actorEstandar()
	svc := NewPlanillaService(repo)

	resp, err := svc.Crear(context.Background(), actor, dto.CrearPlanillaRequest{
		Empresa:       "Copetran",
		Fecha:         "2024-05-10",
		Vehiculo:      88,
		PlanillaNo:    "PL-9001",
		PlanillaValor: d(250000),
	})
	require.NoError(t, err)

	assert.False(t, resp.Cerrado)
	assert.True(t, resp.Novedades.Vale.IsZero())
	assert.True(t, resp.Novedades.Agotado.IsZero())
	assert.Equal(t, actor.Nombre, resp.Usuario)
}

func TestGuardarNovedadesRechazaAgotadoMayorAlValor(t *testing.T) {
	repo := newMemPlanillaRepo()
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	p.Peajes = d(5000)
	require.NoError(t, repo.Update(context.Background(), p))

	svc := NewPlanillaService(repo)
	req := dto.GuardarNovedadesRequest{Agotado: d(150000), Peajes: d(9999)}
	_, err := svc.GuardarNovedades(context.Background(), actor, p.ID, req)
	assert.ErrorIs(t, err, ErrAgotadoSuperaValor)

	// El rechazo no toca ningún campo almacenado.
	guardada, _ := repo.FindByID(context.Background(), p.ID)
	assert.True(t, guardada.Peajes.Equal(d(5000)))
	assert.True(t, guardada.Agotado.IsZero())
}

func TestGuardarNovedadesAceptaAgotadoIgualAlValor(t *testing.T) {
	repo := newMemPlanillaRepo()
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)

	svc := NewPlanillaService(repo)
	resp, err := svc.GuardarNovedades(context.Background(), actor, p.ID, dto.GuardarNovedadesRequest{
		Agotado: d(100000),
	})
	require.NoError(t, err)
	assert.True(t, resp.Novedades.Agotado.Equal(d(100000)))
}

func TestGuardarNovedadesReemplazaElConjuntoCompleto(t *testing.T) {
	repo := newMemPlanillaRepo()
	actor := actorEstandar()
	p := nuevaPlanilla(t, repo, actor, 100000)
	p.Combustible = d(40000)
	require.NoError(t, repo.Update(context.Background(), p))

	svc := NewPlanillaService(repo)
	resp, err := svc.GuardarNovedades(context.Background(), actor, p.ID, dto.GuardarNovedadesRequest{
		Vale: d(12000),
	})
	require.NoError(t, err)

	// Guardado completo: lo no enviado queda en cero, no se mezcla.
	assert.True(t, resp.Novedades.Vale.Equal(d(12000)))
	assert.True(t, resp.Novedades.Combustible.IsZero())
}

func TestListarLimitaAPlanillasPropias(t *testing.T) {
	repo := newMemPlanillaRepo()
	uno := actorEstandar()
	dos := actorEstandar()
	nuevaPlanilla(t, repo, uno, 100000)
	nuevaPlanilla(t, repo, uno, 200000)
	nuevaPlanilla(t, repo, dos, 300000)

	svc := NewPlanillaService(repo)
	propias, err := svc.Listar(context.Background(), uno, nil)
	require.NoError(t, err)
	assert.Len(t, propias, 2)

	todas, err := svc.Listar(context.Background(), actorAdmin(), nil)
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}

func TestObtenerAjenaRechazada(t *testing.T) {
	repo := newMemPlanillaRepo()
	dueno := actorEstandar()
	p := nuevaPlanilla(t, repo, dueno, 100000)

	svc := NewPlanillaService(repo)
	_, err := svc.ObtenerPorID(context.Background(), actorEstandar(), p.ID)
	assert.ErrorIs(t, err, ErrNoAutorizado)

	resp, err := svc.ObtenerPorID(context.Background(), actorAdmin(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "PL-4410", resp.PlanillaNo)
}

func TestEstadisticas(t *testing.T) {
	repo := newMemPlanillaRepo()
	actor := actorEstandar()
	a := nuevaPlanilla(t, repo, actor, 100000)
	nuevaPlanilla(t, repo, actor, 250000)
	a.Cerrado = true
	require.NoError(t, repo.Update(context.Background(), a))

	svc := NewPlanillaService(repo)
	stats, err := svc.Estadisticas(context.Background(), actor)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Abiertas)
	assert.Equal(t, 1, stats.Cerradas)
	assert.True(t, stats.ValorTotal.Equal(decimal.NewFromInt(350000)))
}
