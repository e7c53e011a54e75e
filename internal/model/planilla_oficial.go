package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanillaOficial is an official manifest value loaded in bulk from the
// transport companies' spreadsheets. Used by admins to contrast recorded
// cuadres against the official figures.
type PlanillaOficial struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha      time.Time       `gorm:"type:date;not null;index"`
	PlanillaNo string          `gorm:"not null"`
	Valor      decimal.Decimal `gorm:"type:decimal(14,0);not null"`
	CreatedAt  time.Time
}

func (PlanillaOficial) TableName() string { return "planillas_oficiales" }
