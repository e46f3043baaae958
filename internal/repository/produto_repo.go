package repository

import (
	"context"
	"strings"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	// Search matches the description and the supplier name.
	Search(ctx context.Context, termo string) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uint) error
	// CountReferencias returns how many sale and purchase lines point at the product.
	CountReferencias(ctx context.Context, id uint) (int64, error)

	// Used inside transactions; callers must pass the tx instance
	FindByIDTx(tx *gorm.DB, id uint) (*model.Produto, error)
	// DecrementarEstoqueTx subtracts qtd only if enough stock is left.
	// ok is false when the guard failed and nothing was written.
	DecrementarEstoqueTx(tx *gorm.DB, id uint, qtd int) (novoEstoque int, ok bool, err error)
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Omit("Fornecedor").Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	if err := r.db.WithContext(ctx).Preload("Fornecedor").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) Search(ctx context.Context, termo string) ([]model.Produto, error) {
	var produtos []model.Produto
	q := r.db.WithContext(ctx).Model(&model.Produto{}).Preload("Fornecedor")
	if strings.TrimSpace(termo) != "" {
		like := likeTermo(termo)
		q = q.Joins("LEFT JOIN fornecedores ON fornecedores.id = produtos.fornecedor_id").
			Where("LOWER(produtos.descricao) LIKE ? OR LOWER(fornecedores.nome) LIKE ?", like, like)
	}
	err := q.Order("produtos.descricao ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Omit("Fornecedor").Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, id).Error
}

func (r *produtoRepo) CountReferencias(ctx context.Context, id uint) (int64, error) {
	var vendas, compras int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.ItemVenda{}).Where("produto_id = ?", id).Count(&vendas).Error; err != nil {
		return 0, err
	}
	if err := db.Model(&model.ItemCompra{}).Where("produto_id = ?", id).Count(&compras).Error; err != nil {
		return 0, err
	}
	return vendas + compras, nil
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Produto, error) {
	var p model.Produto
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) DecrementarEstoqueTx(tx *gorm.DB, id uint, qtd int) (int, bool, error) {
	res := tx.Model(&model.Produto{}).
		Where("id = ? AND qtd_estoque >= ?", id, qtd).
		Update("qtd_estoque", gorm.Expr("qtd_estoque - ?", qtd))
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	var estoque []int
	if err := tx.Model(&model.Produto{}).Where("id = ?", id).Pluck("qtd_estoque", &estoque).Error; err != nil {
		return 0, false, err
	}
	if len(estoque) == 0 {
		return 0, false, gorm.ErrRecordNotFound
	}
	return estoque[0], true, nil
}
