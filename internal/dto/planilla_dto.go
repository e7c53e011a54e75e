package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPlanillaRequest struct {
	Empresa       string          `json:"empresa"        validate:"required"`
	Fecha         string          `json:"fecha"          validate:"required,datetime=2006-01-02"`
	Vehiculo      int             `json:"vehiculo"       validate:"required,min=1"`
	PlanillaNo    string          `json:"planilla_no"    validate:"required"`
	PlanillaValor decimal.Decimal `json:"planilla_valor" validate:"required,gt=0"`
}

// GuardarNovedadesRequest carries the full novedad field set; saving persists
// all of them in one update. Agotado is additionally checked against the
// manifest's expected value in the service layer.
type GuardarNovedadesRequest struct {
	DevPaseo           decimal.Decimal `json:"dev_paseo"           validate:"min=0"`
	DevMala            decimal.Decimal `json:"dev_mala"            validate:"min=0"`
	ConsignacionBrinks decimal.Decimal `json:"consignacion_brinks" validate:"min=0"`
	ConsignacionBanco  decimal.Decimal `json:"consignacion_banco"  validate:"min=0"`
	RedespachoManana   decimal.Decimal `json:"redespacho_manana"   validate:"min=0"`
	Peajes             decimal.Decimal `json:"peajes"              validate:"min=0"`
	Combustible        decimal.Decimal `json:"combustible"         validate:"min=0"`
	Fletes             decimal.Decimal `json:"fletes"              validate:"min=0"`
	Acompanamiento     decimal.Decimal `json:"acompanamiento"      validate:"min=0"`
	GastoOficina       decimal.Decimal `json:"gasto_oficina"       validate:"min=0"`
	DescuentoClientes  decimal.Decimal `json:"descuento_clientes"  validate:"min=0"`
	Vale               decimal.Decimal `json:"vale"                validate:"min=0"`
	Agotado            decimal.Decimal `json:"agotado"             validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type NovedadesResponse struct {
	DevPaseo           decimal.Decimal `json:"dev_paseo"`
	DevMala            decimal.Decimal `json:"dev_mala"`
	ConsignacionBrinks decimal.Decimal `json:"consignacion_brinks"`
	ConsignacionBanco  decimal.Decimal `json:"consignacion_banco"`
	RedespachoManana   decimal.Decimal `json:"redespacho_manana"`
	Peajes             decimal.Decimal `json:"peajes"`
	Combustible        decimal.Decimal `json:"combustible"`
	Fletes             decimal.Decimal `json:"fletes"`
	Acompanamiento     decimal.Decimal `json:"acompanamiento"`
	GastoOficina       decimal.Decimal `json:"gasto_oficina"`
	DescuentoClientes  decimal.Decimal `json:"descuento_clientes"`
	Vale               decimal.Decimal `json:"vale"`
	Agotado            decimal.Decimal `json:"agotado"`
}

type PlanillaResponse struct {
	ID            string          `json:"id"`
	Empresa       string          `json:"empresa"`
	Fecha         string          `json:"fecha"`
	Vehiculo      int             `json:"vehiculo"`
	PlanillaNo    string          `json:"planilla_no"`
	PlanillaValor decimal.Decimal `json:"planilla_valor"`

	Novedades NovedadesResponse `json:"novedades"`

	Cerrado             bool             `json:"cerrado"`
	DiferenciaCierre    *decimal.Decimal `json:"diferencia_cierre"`
	CierreConTolerancia bool             `json:"cierre_con_tolerancia"`

	// Usuario is the owner's display name; empty string when the relation
	// was not loaded.
	Usuario       string `json:"usuario"`
	UsuarioCodigo string `json:"usuario_codigo"`
	CreatedAt     string `json:"created_at"`
}

type EstadisticasResponse struct {
	Total      int             `json:"total"`
	Abiertas   int             `json:"abiertas"`
	Cerradas   int             `json:"cerradas"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}
