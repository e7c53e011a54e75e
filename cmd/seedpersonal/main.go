// Command seedpersonal registers an authorized person so they can log in with
// the last 4 digits of their cedula. There is no self-registration endpoint;
// this tool is how the roster is maintained.
//
//	seedpersonal -nombre "Maria Lopez" -codigo 4821 -rol admin
package main

import (
	"context"
	"flag"
	"os"
	"regexp"
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/config"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/infra"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var codigoRe = regexp.MustCompile(`^\d{4}$`)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	nombre := flag.String("nombre", "", "nombre completo de la persona")
	codigo := flag.String("codigo", "", "ultimos 4 digitos de la cedula")
	rol := flag.String("rol", model.RolEstandar, "rol: admin | estandar")
	flag.Parse()

	if *nombre == "" || !codigoRe.MatchString(*codigo) {
		log.Fatal().Msg("uso: seedpersonal -nombre \"Nombre Apellido\" -codigo NNNN [-rol admin|estandar]")
	}
	if *rol != model.RolAdmin && *rol != model.RolEstandar {
		log.Fatal().Str("rol", *rol).Msg("rol no reconocido")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	repo := repository.NewPersonalRepository(db)
	p := &model.PersonalAutorizado{
		Nombre:   *nombre,
		Ultimos4: *codigo,
		Rol:      *rol,
		Activo:   true,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		log.Fatal().Err(err).Msg("no se pudo registrar la persona")
	}
	log.Info().
		Str("id", p.ID.String()).
		Str("nombre", p.Nombre).
		Str("rol", p.Rol).
		Msg("persona autorizada registrada")
}
