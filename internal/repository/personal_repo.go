package repository

import (
	"context"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonalRepository interface {
	// FindActivoPorCodigo resolves the 4-digit code to an active person.
	FindActivoPorCodigo(ctx context.Context, ultimos4 string) (*model.PersonalAutorizado, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.PersonalAutorizado, error)
	Create(ctx context.Context, p *model.PersonalAutorizado) error
}

type personalRepo struct{ db *gorm.DB }

func NewPersonalRepository(db *gorm.DB) PersonalRepository { return &personalRepo{db: db} }

func (r *personalRepo) FindActivoPorCodigo(ctx context.Context, ultimos4 string) (*model.PersonalAutorizado, error) {
	var p model.PersonalAutorizado
	err := r.db.WithContext(ctx).Where("ultimos_4 = ? AND activo = true", ultimos4).First(&p).Error
	return &p, err
}

func (r *personalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PersonalAutorizado, error) {
	var p model.PersonalAutorizado
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *personalRepo) Create(ctx context.Context, p *model.PersonalAutorizado) error {
	return r.db.WithContext(ctx).Create(p).Error
}
