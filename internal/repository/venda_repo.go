package repository

import (
	"context"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venda) error
	CreateItemTx(tx *gorm.DB, item *model.ItemVenda) error
	FindByID(ctx context.Context, id uint) (*model.Venda, error)
	// RegistrarPagamento moves a pendente sale to paga. It returns false,
	// without writing, when the sale is no longer pendente.
	RegistrarPagamento(ctx context.Context, id uint, observacoes string, troco decimal.Decimal, pagoEm time.Time) (bool, error)
	// ListPeriodo returns sales with inicio <= data_venda < fim, newest first.
	ListPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Venda, error)
	// ListSemRecibo returns sales paid between desde and antes whose receipt
	// was never recorded.
	ListSemRecibo(ctx context.Context, desde, antes time.Time, limit int) ([]model.Venda, error)
	MarcarRecibo(ctx context.Context, id uint, path string) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Omit(clause.Associations).Create(v).Error
}

func (r *vendaRepo) CreateItemTx(tx *gorm.DB, item *model.ItemVenda) error {
	return tx.Omit(clause.Associations).Create(item).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uint) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).Preload("Cliente").Preload("Itens.Produto").First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendaRepo) RegistrarPagamento(ctx context.Context, id uint, observacoes string, troco decimal.Decimal, pagoEm time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Venda{}).
		Where("id = ? AND status = ?", id, model.VendaPendente).
		Updates(map[string]interface{}{
			"status":      model.VendaPaga,
			"observacoes": observacoes,
			"troco":       troco,
			"pago_em":     pagoEm,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *vendaRepo) ListPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).Preload("Cliente").
		Where("data_venda >= ? AND data_venda < ?", inicio, fim).
		Order("data_venda DESC, id DESC").
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) ListSemRecibo(ctx context.Context, desde, antes time.Time, limit int) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Where("status = ? AND recibo_path IS NULL AND pago_em >= ? AND pago_em < ?", model.VendaPaga, desde, antes).
		Order("pago_em ASC").Limit(limit).
		Find(&vendas).Error
	return vendas, err
}

func (r *vendaRepo) MarcarRecibo(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).Model(&model.Venda{}).Where("id = ?", id).Update("recibo_path", path).Error
}
