package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de denominación contada.
const (
	TipoMoneda  = "moneda"
	TipoBillete = "billete"
)

// Denominaciones válidas por tipo, en COP enteros.
var (
	DenominacionesBillete = []int64{100000, 50000, 20000, 10000, 5000, 2000}
	DenominacionesMoneda  = []int64{1000, 500, 200, 100, 50}
)

// CuadreDenominacion is one counted-quantity row for a coin or bill value.
// Rows are append-only: re-entering the same denomination adds a new row and
// totals are always the sum over all rows of the manifest, never a merge.
type CuadreDenominacion struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CuadreID uuid.UUID `gorm:"type:uuid;not null;index:idx_denominacion_cuadre_tipo"`
	// Tipo: "moneda" | "billete"
	Tipo         string          `gorm:"type:varchar(10);not null;index:idx_denominacion_cuadre_tipo"`
	Denominacion decimal.Decimal `gorm:"type:decimal(14,0);not null"`
	Cantidad     int             `gorm:"not null"`
	// Total = Denominacion * Cantidad, fixed at insert time.
	Total     decimal.Decimal `gorm:"type:decimal(14,0);not null"`
	CreatedAt time.Time
}

func (CuadreDenominacion) TableName() string { return "cuadre_denominaciones" }

// DenominacionValida reports whether denom belongs to the fixed set for tipo.
func DenominacionValida(tipo string, denom int64) bool {
	var set []int64
	switch tipo {
	case TipoMoneda:
		set = DenominacionesMoneda
	case TipoBillete:
		set = DenominacionesBillete
	default:
		return false
	}
	for _, v := range set {
		if v == denom {
			return true
		}
	}
	return false
}
