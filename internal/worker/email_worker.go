package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	VendaID uint   `json:"venda_id,omitempty"`
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// ReciboMailer sends one receipt e-mail. *infra.Mailer satisfies it.
type ReciboMailer interface {
	Enabled() bool
	EnviarRecibo(to, subject, body, pdfPath string) error
}

// EmailWorker mails PDF receipts to customers.
type EmailWorker struct {
	mailer ReciboMailer
}

func NewEmailWorker(mailer ReciboMailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the e-mail. Malformed payloads are dropped; SMTP failures
// are returned so the pool retries them.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}
	if !w.mailer.Enabled() {
		return errors.New("email_worker: SMTP not configured")
	}

	if err := w.mailer.EnviarRecibo(payload.ToEmail, payload.Subject, payload.Body, payload.PDFPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: recibo enviado")
	return nil
}
