package worker

// Receipt and e-mail jobs that run out of attempts end up in dlq:{queue}.
// Each entry names the sale it belonged to; the sweeper picks the sale up
// again while it is inside the sweep window.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"

	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry is a receipt or e-mail job that gave up.
type DLQEntry struct {
	Fila        string          `json:"fila"`
	Tipo        string          `json:"tipo"`
	VendaID     uint            `json:"venda_id,omitempty"`
	CodigoVenda string          `json:"codigo_venda,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	Motivo      string          `json:"motivo"`
	Tentativas  int             `json:"tentativas"`
	FalhouEm    time.Time       `json:"falhou_em"`
}

// vendaDoPayload pulls venda_id out of a recibo or email payload. Zero when
// the payload is malformed or has none.
func vendaDoPayload(payload json.RawMessage) uint {
	var ref struct {
		VendaID uint `json:"venda_id"`
	}
	if json.Unmarshal(payload, &ref) != nil {
		return 0
	}
	return ref.VendaID
}

// SendToDLQ records a job that will not be retried. Failures to write are
// only logged; the pool has nowhere else to put the job.
func SendToDLQ(ctx context.Context, rdb Lists, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	entry := DLQEntry{
		Fila:       queue,
		Tipo:       jobType,
		VendaID:    vendaDoPayload(payload),
		Payload:    payload,
		Motivo:     reason,
		Tentativas: attempts,
		FalhouEm:   time.Now().UTC(),
	}
	if entry.VendaID != 0 {
		entry.CodigoVenda = format.CodigoVenda(entry.VendaID)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Uint("venda_id", entry.VendaID).Msg("dlq: failed to marshal entry")
		return
	}

	key := DLQPrefix + queue
	if err := rdb.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", key).Uint("venda_id", entry.VendaID).Msg("dlq: failed to push entry")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", jobType).
		Uint("venda_id", entry.VendaID).
		Str("codigo_venda", entry.CodigoVenda).
		Str("reason", reason).
		Int("attempts", attempts).
		Msg("dlq: receipt job abandoned")
}

// DLQLength returns the number of entries in a DLQ, reported by /health.
func DLQLength(ctx context.Context, rdb Lists, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
