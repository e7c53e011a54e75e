package service

import (
	"context"
	"errors"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/config"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/dto"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

type SesionService interface {
	// Ingresar resolves the 4-digit code against personal_autorizado and
	// issues a signed session token. Unknown or inactive codes are rejected
	// with a single generic message.
	Ingresar(ctx context.Context, req dto.IngresarRequest) (*dto.SesionResponse, error)
}

type sesionService struct {
	repo repository.PersonalRepository
	cfg  *config.Config
}

func NewSesionService(repo repository.PersonalRepository, cfg *config.Config) SesionService {
	return &sesionService{repo: repo, cfg: cfg}
}

func (s *sesionService) Ingresar(ctx context.Context, req dto.IngresarRequest) (*dto.SesionResponse, error) {
	personal, err := s.repo.FindActivoPorCodigo(ctx, req.Ultimos4)
	if err != nil {
		return nil, errors.New("Usuario no autorizado")
	}

	token, err := s.generateToken(personal)
	if err != nil {
		return nil, err
	}

	return &dto.SesionResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Personal: dto.PersonalResponse{
			ID:       personal.ID.String(),
			Nombre:   personal.Nombre,
			Ultimos4: personal.Ultimos4,
			Rol:      personal.Rol,
		},
	}, nil
}

func (s *sesionService) generateToken(p *model.PersonalAutorizado) (string, error) {
	claims := jwt.MapClaims{
		"personal_id": p.ID.String(),
		"nombre":      p.Nombre,
		"rol":         p.Rol,
		"exp":         time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
