package worker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// NotificacionMailer is implemented by infra.Mailer.
type NotificacionMailer interface {
	SendNotificacion(to, subject, body string) error
}

// NotificacionWorker emails the administrator every time a planilla is closed.
type NotificacionWorker struct {
	mailer     NotificacionMailer
	adminEmail string
}

func NewNotificacionWorker(mailer NotificacionMailer, adminEmail string) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer, adminEmail: adminEmail}
}

func (w *NotificacionWorker) Process(ctx context.Context, payload CierrePayload) error {
	if w.adminEmail == "" {
		log.Debug().Str("planilla_id", payload.PlanillaID).Msg("sin correo de administrador, notificación omitida")
		return nil
	}

	subject := fmt.Sprintf("Cierre de planilla %s (%s)", payload.PlanillaNo, payload.Fecha)
	estado := "cuadre exacto"
	if payload.ConTolerancia {
		estado = "cierre dentro de tolerancia"
	}
	body := fmt.Sprintf(
		"Se cerró la planilla %s de %s.\n\nFecha: %s\nCerrada por: %s\nDiferencia: %s (%s)\n",
		payload.PlanillaNo, payload.Empresa, payload.Fecha, payload.Usuario, payload.Diferencia, estado,
	)

	if err := w.mailer.SendNotificacion(w.adminEmail, subject, body); err != nil {
		return fmt.Errorf("notificacion_worker: enviar correo: %w", err)
	}
	log.Info().Str("planilla_id", payload.PlanillaID).Msg("notificación de cierre enviada")
	return nil
}
