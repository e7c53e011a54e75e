package repository

import (
	"context"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DenominacionRepository interface {
	// CreateBatch appends all rows in a single INSERT. The batch either fully
	// succeeds or fails as a whole, no partial inserts.
	CreateBatch(ctx context.Context, rows []model.CuadreDenominacion) error
	ListByCuadre(ctx context.Context, cuadreID uuid.UUID, tipo string) ([]model.CuadreDenominacion, error)
	// ListByCuadres loads the rows of many manifests at once (batch export).
	ListByCuadres(ctx context.Context, cuadreIDs []uuid.UUID) ([]model.CuadreDenominacion, error)
}

type denominacionRepo struct{ db *gorm.DB }

func NewDenominacionRepository(db *gorm.DB) DenominacionRepository {
	return &denominacionRepo{db: db}
}

func (r *denominacionRepo) CreateBatch(ctx context.Context, rows []model.CuadreDenominacion) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *denominacionRepo) ListByCuadre(ctx context.Context, cuadreID uuid.UUID, tipo string) ([]model.CuadreDenominacion, error) {
	var rows []model.CuadreDenominacion
	err := r.db.WithContext(ctx).
		Where("cuadre_id = ? AND tipo = ?", cuadreID, tipo).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *denominacionRepo) ListByCuadres(ctx context.Context, cuadreIDs []uuid.UUID) ([]model.CuadreDenominacion, error) {
	if len(cuadreIDs) == 0 {
		return nil, nil
	}
	var rows []model.CuadreDenominacion
	err := r.db.WithContext(ctx).
		Where("cuadre_id IN ?", cuadreIDs).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
