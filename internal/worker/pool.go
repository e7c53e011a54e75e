package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// QueueNotificaciones is the Redis list the dispatcher pushes closing jobs to
// and the worker pool pops from.
const QueueNotificaciones = "cuadre:notificaciones"

// CierrePayload describes a closed planilla for the notification email.
type CierrePayload struct {
	PlanillaID    string `json:"planilla_id"`
	Empresa       string `json:"empresa"`
	PlanillaNo    string `json:"planilla_no"`
	Fecha         string `json:"fecha"`
	Usuario       string `json:"usuario"`
	Diferencia    string `json:"diferencia"`
	ConTolerancia bool   `json:"con_tolerancia"`
}

// Dispatcher enqueues jobs onto the Redis-backed queue.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) EncolarCierre(ctx context.Context, payload CierrePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueNotificaciones, data).Err()
}

// Processor consumes one decoded job.
type Processor interface {
	Process(ctx context.Context, payload CierrePayload) error
}

// StartWorkerPool launches size goroutines blocking on the queue. Each worker
// drains until ctx is cancelled; processing errors are logged and the job is
// dropped, a notification is never worth retry loops.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, processor Processor, size int) {
	if size < 1 {
		size = 1
	}
	for i := 0; i < size; i++ {
		go runWorker(ctx, rdb, processor, i)
	}
	log.Info().Int("workers", size).Msg("pool de notificaciones iniciado")
}

func runWorker(ctx context.Context, rdb *redis.Client, processor Processor, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := rdb.BRPop(ctx, 5*time.Second, QueueNotificaciones).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Int("worker", id).Msg("error leyendo la cola de notificaciones")
			time.Sleep(time.Second)
			continue
		}
		// BRPop returns [key, value].
		if len(res) < 2 {
			continue
		}

		var payload CierrePayload
		if err := json.Unmarshal([]byte(res[1]), &payload); err != nil {
			log.Error().Err(err).Int("worker", id).Msg("trabajo de notificación ilegible")
			continue
		}
		if err := processor.Process(ctx, payload); err != nil {
			log.Error().Err(err).
				Int("worker", id).
				Str("planilla_id", payload.PlanillaID).
				Msg("la notificación de cierre falló")
		}
	}
}
