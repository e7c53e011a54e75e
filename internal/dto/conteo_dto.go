package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ConteoItem struct {
	Denominacion int64 `json:"denominacion" validate:"required,gt=0"`
	Cantidad     int   `json:"cantidad"     validate:"min=0"`
}

// RegistrarConteoRequest is one counting submission. Items with cantidad 0 are
// skipped; the rest are appended as new rows (repeat submissions accumulate).
type RegistrarConteoRequest struct {
	Items []ConteoItem `json:"items" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DenominacionResponse struct {
	ID           string          `json:"id"`
	Denominacion decimal.Decimal `json:"denominacion"`
	Cantidad     int             `json:"cantidad"`
	Total        decimal.Decimal `json:"total"`
}

type ConteoResponse struct {
	CuadreID  string                 `json:"cuadre_id"`
	Tipo      string                 `json:"tipo"`
	Registros []DenominacionResponse `json:"registros"`
	Total     decimal.Decimal        `json:"total"`
}
