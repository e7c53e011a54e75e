package service

import (
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/shopspring/decimal"
)

// ToleranciaCierre is the ±500 COP band within which a nonzero variance still
// permits closing a planilla.
var ToleranciaCierre = decimal.NewFromInt(500)

// Veredictos de cuadre.
const (
	VeredictoPerfecto = "CUADRE PERFECTO"
	VeredictoSobra    = "SOBRA DINERO"
	VeredictoFalta    = "FALTA DINERO"
)

// Derivados holds the reconciliation figures. They are a pure function of the
// persisted rows and are recomputed from scratch on every read. Only the
// closing snapshot (DiferenciaCierre) is ever stored.
type Derivados struct {
	TotalMonedas     decimal.Decimal
	TotalBilletes    decimal.Decimal
	TotalEfectivo    decimal.Decimal
	PlanillaAjustada decimal.Decimal
	TotalLegalizado  decimal.Decimal
	Diferencia       decimal.Decimal
}

func calcularDerivados(p *model.CuadrePlanilla, denominaciones []model.CuadreDenominacion) Derivados {
	var d Derivados
	for _, row := range denominaciones {
		switch row.Tipo {
		case model.TipoMoneda:
			d.TotalMonedas = d.TotalMonedas.Add(row.Total)
		case model.TipoBillete:
			d.TotalBilletes = d.TotalBilletes.Add(row.Total)
		}
	}
	d.TotalEfectivo = d.TotalMonedas.Add(d.TotalBilletes)

	// Defensive floor: the novedades editor already rejects agotado > valor,
	// but the computation must never go negative if that state is reached
	// through direct data manipulation.
	d.PlanillaAjustada = p.PlanillaValor.Sub(p.Agotado)
	if d.PlanillaAjustada.IsNegative() {
		d.PlanillaAjustada = decimal.Zero
	}

	d.TotalLegalizado = d.TotalEfectivo.Add(sumarNovedades(p))
	d.Diferencia = d.TotalLegalizado.Sub(d.PlanillaAjustada)
	return d
}

// sumarNovedades adds every novedad field except agotado. Vale counts.
func sumarNovedades(p *model.CuadrePlanilla) decimal.Decimal {
	return p.DevPaseo.
		Add(p.DevMala).
		Add(p.ConsignacionBrinks).
		Add(p.ConsignacionBanco).
		Add(p.RedespachoManana).
		Add(p.Peajes).
		Add(p.Combustible).
		Add(p.Fletes).
		Add(p.Acompanamiento).
		Add(p.GastoOficina).
		Add(p.DescuentoClientes).
		Add(p.Vale)
}

func dentroDeTolerancia(diferencia decimal.Decimal) bool {
	return diferencia.Abs().LessThanOrEqual(ToleranciaCierre)
}

func veredicto(diferencia decimal.Decimal) string {
	switch {
	case diferencia.IsZero():
		return VeredictoPerfecto
	case diferencia.IsPositive():
		return VeredictoSobra
	default:
		return VeredictoFalta
	}
}
