package repository

import (
	"context"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanillaFilter narrows a manifest listing. Nil fields are ignored.
type PlanillaFilter struct {
	PersonalID   *uuid.UUID
	Fecha        *time.Time
	SoloCerradas bool
}

type PlanillaRepository interface {
	Create(ctx context.Context, p *model.CuadrePlanilla) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CuadrePlanilla, error)
	Update(ctx context.Context, p *model.CuadrePlanilla) error
	List(ctx context.Context, filter PlanillaFilter) ([]model.CuadrePlanilla, error)
}

type planillaRepo struct{ db *gorm.DB }

func NewPlanillaRepository(db *gorm.DB) PlanillaRepository { return &planillaRepo{db: db} }

func (r *planillaRepo) Create(ctx context.Context, p *model.CuadrePlanilla) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *planillaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CuadrePlanilla, error) {
	var p model.CuadrePlanilla
	err := r.db.WithContext(ctx).Preload("Personal").First(&p, id).Error
	return &p, err
}

func (r *planillaRepo) Update(ctx context.Context, p *model.CuadrePlanilla) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *planillaRepo) List(ctx context.Context, filter PlanillaFilter) ([]model.CuadrePlanilla, error) {
	q := r.db.WithContext(ctx).Preload("Personal").Order("created_at DESC")
	if filter.PersonalID != nil {
		q = q.Where("personal_id = ?", *filter.PersonalID)
	}
	if filter.Fecha != nil {
		q = q.Where("fecha = ?", filter.Fecha.Format("2006-01-02"))
	}
	if filter.SoloCerradas {
		q = q.Where("cerrado = true")
	}
	var planillas []model.CuadrePlanilla
	err := q.Find(&planillas).Error
	return planillas, err
}
