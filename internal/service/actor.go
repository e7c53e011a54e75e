package service

import (
	"errors"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"github.com/google/uuid"
)

// Actor is the explicit session identity passed to every operation that needs
// one. Handlers build it from the JWT claims; nothing in the service layer
// reads ambient session state.
type Actor struct {
	PersonalID uuid.UUID
	Nombre     string
	Rol        string
}

func (a Actor) EsAdmin() bool { return a.Rol == model.RolAdmin }

// Sentinel errors. Handlers map these to HTTP statuses.
var (
	ErrPlanillaNoEncontrada = errors.New("planilla no encontrada")
	ErrNoAutorizado         = errors.New("no autorizado para esta planilla")
	ErrPlanillaCerrada      = errors.New("la planilla está cerrada")
	ErrAgotadoSuperaValor   = errors.New("el valor agotado no puede ser mayor al valor de la planilla")
	ErrDenominacionInvalida = errors.New("denominación no válida para este tipo de conteo")
	ErrTipoConteoInvalido   = errors.New("tipo de conteo inválido")
	ErrFueraDeTolerancia    = errors.New("la diferencia está fuera de la tolerancia de cierre")
)

// autorizarLectura: admins see everything, the rest only their own planillas.
func autorizarLectura(actor Actor, p *model.CuadrePlanilla) error {
	if actor.EsAdmin() || p.PersonalID == actor.PersonalID {
		return nil
	}
	return ErrNoAutorizado
}

// autorizarMutacion applies the edit-lock rule: a closed planilla only accepts
// further mutation from an admin actor.
func autorizarMutacion(actor Actor, p *model.CuadrePlanilla) error {
	if err := autorizarLectura(actor, p); err != nil {
		return err
	}
	if p.Cerrado && !actor.EsAdmin() {
		return ErrPlanillaCerrada
	}
	return nil
}
