package repository

import (
	"context"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"gorm.io/gorm"
)

type MovimentoEstoqueRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error
	ListByProduto(ctx context.Context, produtoID uint) ([]model.MovimentoEstoque, error)
}

type movimentoEstoqueRepo struct{ db *gorm.DB }

func NewMovimentoEstoqueRepository(db *gorm.DB) MovimentoEstoqueRepository {
	return &movimentoEstoqueRepo{db: db}
}

func (r *movimentoEstoqueRepo) CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentoEstoqueRepo) ListByProduto(ctx context.Context, produtoID uint) ([]model.MovimentoEstoque, error) {
	var movs []model.MovimentoEstoque
	err := r.db.WithContext(ctx).
		Where("produto_id = ?", produtoID).
		Order("created_at DESC, id DESC").
		Find(&movs).Error
	return movs, err
}
