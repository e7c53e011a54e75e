package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CuadrePlanilla is one cash-collection manifest to be reconciled.
// Lifecycle: abierta (cerrado=false) → cerrada (cerrado=true). There is no
// cancellation or deletion; once closed only an admin may mutate it again.
//
// The novedad amounts live directly on the record (not a separate ledger) and
// default to 0. DiferenciaCierre is the only derived quantity ever persisted:
// a snapshot of the variance at the instant of closing.
type CuadrePlanilla struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PersonalID uuid.UUID `gorm:"type:uuid;not null;index"`
	Empresa    string    `gorm:"not null"`
	Fecha      time.Time `gorm:"type:date;not null;index"`
	Vehiculo   int       `gorm:"not null"`
	PlanillaNo string    `gorm:"not null"`
	// PlanillaValor is the expected value of the manifest, in whole COP.
	PlanillaValor decimal.Decimal `gorm:"type:decimal(14,0);not null"`

	// Novedades y gastos. Every field except Agotado sums into el total
	// legalizado. All default to 0 and are never negative.
	DevPaseo           decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	DevMala            decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	ConsignacionBrinks decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	ConsignacionBanco  decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	RedespachoManana   decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	Peajes             decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	Combustible        decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	Fletes             decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	Acompanamiento     decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	GastoOficina       decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	DescuentoClientes  decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	Vale               decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	// Agotado is the shortfall deducted from PlanillaValor before reconciling.
	// Input-time invariant: Agotado <= PlanillaValor.
	Agotado decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`

	Cerrado bool `gorm:"not null;default:false"`
	// DiferenciaCierre: variance snapshot persisted at closing time.
	DiferenciaCierre *decimal.Decimal `gorm:"type:decimal(14,0)"`
	// CierreConTolerancia: closing happened with a nonzero but tolerated variance.
	CierreConTolerancia bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Personal *PersonalAutorizado `gorm:"foreignKey:PersonalID"`
}

func (CuadrePlanilla) TableName() string { return "cuadre_planilla" }
