package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles del personal autorizado.
const (
	RolAdmin    = "admin"
	RolEstandar = "estandar"
)

// PersonalAutorizado stores the agency staff allowed to operate the system.
// Records are managed via cmd/seedpersonal; the API only reads them.
// Identification is by the last 4 digits of the national ID (ultimos_4).
type PersonalAutorizado struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre   string    `gorm:"not null"`
	Ultimos4 string    `gorm:"type:varchar(4);uniqueIndex;not null"`
	// Rol: "admin" | "estandar"
	Rol       string `gorm:"type:varchar(20);not null;default:'estandar'"`
	Activo    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (PersonalAutorizado) TableName() string { return "personal_autorizado" }

// EsAdmin reports whether the person carries the admin role.
func (p *PersonalAutorizado) EsAdmin() bool { return p.Rol == RolAdmin }
