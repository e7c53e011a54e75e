package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/apierror"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/middleware"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// actorFromClaims builds the service-layer identity from the JWT claims.
func actorFromClaims(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.PersonalID)
	return service.Actor{PersonalID: id, Nombre: claims.Nombre, Rol: claims.Rol}
}

// parseID reads the :id path param. Writes the 400 itself on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// responderError maps service sentinel errors to HTTP statuses.
func responderError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrPlanillaNoEncontrada):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoAutorizado):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrPlanillaCerrada),
		errors.Is(err, service.ErrFueraDeTolerancia):
		status = http.StatusConflict
	case errors.Is(err, service.ErrAgotadoSuperaValor),
		errors.Is(err, service.ErrDenominacionInvalida):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, apierror.New(err.Error()))
}
