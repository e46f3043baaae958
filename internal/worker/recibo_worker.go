package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/infra"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EmailEnqueuer is satisfied by *Dispatcher.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload EmailJobPayload) error
}

// ReciboWorker renders the PDF receipt of a paid sale, records its path and,
// when the customer has an e-mail and SMTP is configured, queues the e-mail.
type ReciboWorker struct {
	vendas      repository.VendaRepository
	emails      EmailEnqueuer
	mailer      ReciboMailer
	loja        string
	storagePath string
	loc         *time.Location
}

func NewReciboWorker(vendas repository.VendaRepository, emails EmailEnqueuer, mailer ReciboMailer, loja, storagePath string, loc *time.Location) *ReciboWorker {
	return &ReciboWorker{
		vendas:      vendas,
		emails:      emails,
		mailer:      mailer,
		loja:        loja,
		storagePath: storagePath,
		loc:         loc,
	}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return nil
	}

	venda, err := w.vendas.FindByID(ctx, payload.VendaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Uint("venda_id", payload.VendaID).Msg("recibo_worker: venda not found, dropping job")
		return nil
	}
	if err != nil {
		return err
	}
	if venda.Status != model.VendaPaga {
		log.Warn().Uint("venda_id", venda.ID).Str("status", venda.Status).Msg("recibo_worker: venda not paid, skipping")
		return nil
	}
	// Duplicate job (sweeper raced the first enqueue).
	if venda.ReciboPath != nil {
		return nil
	}

	path, err := infra.GerarReciboPDF(venda, w.loja, w.storagePath, w.loc)
	if err != nil {
		return err
	}
	if err := w.vendas.MarcarRecibo(ctx, venda.ID, path); err != nil {
		return err
	}
	log.Info().Uint("venda_id", venda.ID).Str("path", path).Msg("recibo_worker: recibo gerado")

	if venda.Cliente == nil || venda.Cliente.Email == nil || *venda.Cliente.Email == "" {
		return nil
	}
	if w.mailer == nil || !w.mailer.Enabled() {
		return nil
	}
	codigo := format.CodigoVenda(venda.ID)
	email := EmailJobPayload{
		VendaID: venda.ID,
		ToEmail: *venda.Cliente.Email,
		Subject: fmt.Sprintf("Recibo da venda %s - %s", codigo, w.loja),
		Body: fmt.Sprintf("Olá, %s!\n\nSegue em anexo o recibo da venda %s no valor de %s.\n\n%s",
			venda.Cliente.Nome, codigo, format.FormatarMoeda(venda.TotalVenda), w.loja),
		PDFPath: path,
	}
	// The receipt itself is done; a lost e-mail is logged, not retried here.
	if err := w.emails.EnqueueEmail(ctx, email); err != nil {
		log.Error().Err(err).Uint("venda_id", venda.ID).Msg("recibo_worker: failed to enqueue email")
	}
	return nil
}
