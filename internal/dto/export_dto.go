package dto

import "github.com/shopspring/decimal"

// ImportOficialesResponse summarizes a bulk XLSX load of official manifests.
// A row counts as invalida when its date, number or value cannot be parsed;
// as error when the insert itself failed.
type ImportOficialesResponse struct {
	TotalFilas int `json:"total_filas"`
	Insertadas int `json:"insertadas"`
	Invalidas  int `json:"invalidas"`
	Errores    int `json:"errores"`
}

type PlanillaOficialResponse struct {
	ID         string          `json:"id"`
	Fecha      string          `json:"fecha"`
	PlanillaNo string          `json:"planilla_no"`
	Valor      decimal.Decimal `json:"valor"`
}
