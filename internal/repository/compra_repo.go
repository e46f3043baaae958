package repository

import (
	"context"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompraFiltro narrows ListCompras. Zero values disable a filter; Fim is
// exclusive.
type CompraFiltro struct {
	FornecedorID uint
	Status       string
	Inicio       *time.Time
	Fim          *time.Time
}

type CompraRepository interface {
	// CreateTx writes the header and then every line of c.Itens.
	CreateTx(tx *gorm.DB, c *model.Compra) error
	FindByID(ctx context.Context, id uint) (*model.Compra, error)
	List(ctx context.Context, filtro CompraFiltro) ([]model.Compra, error)
	// UpdateStatus returns gorm.ErrRecordNotFound when id does not exist.
	UpdateStatus(ctx context.Context, id uint, status string) error

	// UltimoNumeroPedidoTx returns the lexicographically last order number
	// starting with chave + "-", or "" when the day has none yet.
	UltimoNumeroPedidoTx(tx *gorm.DB, chave string) (string, error)
	// ProximaSequenciaTx increments the day counter for chave and returns
	// the new value. A missing counter row is created at seed first. The
	// UPDATE holds the row lock until the transaction ends.
	ProximaSequenciaTx(tx *gorm.DB, chave string, seed int) (int, error)

	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) DB() *gorm.DB { return r.db }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	itens := c.Itens
	if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
		return err
	}
	for i := range itens {
		itens[i].CompraID = c.ID
		if err := tx.Omit(clause.Associations).Create(&itens[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *compraRepo) FindByID(ctx context.Context, id uint) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Fornecedor").Preload("CriadoPor").Preload("Itens.Produto").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) List(ctx context.Context, f CompraFiltro) ([]model.Compra, error) {
	var compras []model.Compra
	q := r.db.WithContext(ctx).Model(&model.Compra{})
	if f.FornecedorID != 0 {
		q = q.Where("fornecedor_id = ?", f.FornecedorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Inicio != nil {
		q = q.Where("data_compra >= ?", *f.Inicio)
	}
	if f.Fim != nil {
		q = q.Where("data_compra < ?", *f.Fim)
	}
	err := q.Preload("Fornecedor").Preload("Itens.Produto").
		Order("data_compra DESC, id DESC").
		Find(&compras).Error
	return compras, err
}

func (r *compraRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Compra{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *compraRepo) UltimoNumeroPedidoTx(tx *gorm.DB, chave string) (string, error) {
	var numeros []string
	err := tx.Model(&model.Compra{}).
		Where("numero_pedido LIKE ?", chave+"-%").
		Order("numero_pedido DESC").Limit(1).
		Pluck("numero_pedido", &numeros).Error
	if err != nil || len(numeros) == 0 {
		return "", err
	}
	return numeros[0], nil
}

func (r *compraRepo) ProximaSequenciaTx(tx *gorm.DB, chave string, seed int) (int, error) {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SequenciaPedido{Chave: chave, Ultimo: seed}).Error
	if err != nil {
		return 0, err
	}
	err = tx.Model(&model.SequenciaPedido{}).Where("chave = ?", chave).
		Update("ultimo", gorm.Expr("ultimo + 1")).Error
	if err != nil {
		return 0, err
	}
	var ultimo []int
	if err := tx.Model(&model.SequenciaPedido{}).Where("chave = ?", chave).Pluck("ultimo", &ultimo).Error; err != nil {
		return 0, err
	}
	if len(ultimo) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ultimo[0], nil
}
