package repository

import (
	"context"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"gorm.io/gorm"
)

type PlanillaOficialRepository interface {
	Create(ctx context.Context, p *model.PlanillaOficial) error
	List(ctx context.Context, fecha *time.Time) ([]model.PlanillaOficial, error)
}

type planillaOficialRepo struct{ db *gorm.DB }

func NewPlanillaOficialRepository(db *gorm.DB) PlanillaOficialRepository {
	return &planillaOficialRepo{db: db}
}

func (r *planillaOficialRepo) Create(ctx context.Context, p *model.PlanillaOficial) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *planillaOficialRepo) List(ctx context.Context, fecha *time.Time) ([]model.PlanillaOficial, error) {
	q := r.db.WithContext(ctx).Order("fecha DESC, planilla_no ASC")
	if fecha != nil {
		q = q.Where("fecha = ?", fecha.Format("2006-01-02"))
	}
	var rows []model.PlanillaOficial
	err := q.Find(&rows).Error
	return rows, err
}
