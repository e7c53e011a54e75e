package dto

import "github.com/shopspring/decimal"

// ResumenResponse carries the reconciliation figures. The four derived
// quantities are recomputed from persisted rows on every request, nothing
// here is cached.
type ResumenResponse struct {
	PlanillaID    string          `json:"planilla_id"`
	Empresa       string          `json:"empresa"`
	Fecha         string          `json:"fecha"`
	Vehiculo      int             `json:"vehiculo"`
	PlanillaNo    string          `json:"planilla_no"`
	PlanillaValor decimal.Decimal `json:"planilla_valor"`
	Agotado       decimal.Decimal `json:"agotado"`

	TotalMonedas  decimal.Decimal `json:"total_monedas"`
	TotalBilletes decimal.Decimal `json:"total_billetes"`

	Novedades NovedadesResponse `json:"novedades"`

	TotalEfectivo    decimal.Decimal `json:"total_efectivo"`
	PlanillaAjustada decimal.Decimal `json:"planilla_ajustada"`
	TotalLegalizado  decimal.Decimal `json:"total_legalizado"`
	Diferencia       decimal.Decimal `json:"diferencia"`

	// Veredicto: CUADRE PERFECTO | SOBRA DINERO | FALTA DINERO
	Veredicto   string `json:"veredicto"`
	PuedeCerrar bool   `json:"puede_cerrar"`

	Cerrado             bool             `json:"cerrado"`
	DiferenciaCierre    *decimal.Decimal `json:"diferencia_cierre"`
	CierreConTolerancia bool             `json:"cierre_con_tolerancia"`
}

type CerrarResponse struct {
	PlanillaID          string          `json:"planilla_id"`
	Cerrado             bool            `json:"cerrado"`
	DiferenciaCierre    decimal.Decimal `json:"diferencia_cierre"`
	CierreConTolerancia bool            `json:"cierre_con_tolerancia"`
}
