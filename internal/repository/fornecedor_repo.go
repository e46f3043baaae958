package repository

import (
	"context"
	"strings"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"gorm.io/gorm"
)

type FornecedorRepository interface {
	Create(ctx context.Context, f *model.Fornecedor) error
	FindByID(ctx context.Context, id uint) (*model.Fornecedor, error)
	Search(ctx context.Context, termo string) ([]model.Fornecedor, error)
	Update(ctx context.Context, f *model.Fornecedor) error
	Delete(ctx context.Context, id uint) error
	CNPJEmUso(ctx context.Context, cnpj string, exceptID uint) (bool, error)
	// CountReferencias returns how many purchase orders and products point at
	// the supplier.
	CountReferencias(ctx context.Context, id uint) (compras, produtos int64, err error)
}

type fornecedorRepo struct{ db *gorm.DB }

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository { return &fornecedorRepo{db: db} }

func (r *fornecedorRepo) Create(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fornecedorRepo) FindByID(ctx context.Context, id uint) (*model.Fornecedor, error) {
	var f model.Fornecedor
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepo) Search(ctx context.Context, termo string) ([]model.Fornecedor, error) {
	var fornecedores []model.Fornecedor
	q := r.db.WithContext(ctx).Model(&model.Fornecedor{})
	if strings.TrimSpace(termo) != "" {
		like := likeTermo(termo)
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(cnpj) LIKE ? OR LOWER(email) LIKE ? OR LOWER(cidade) LIKE ?",
			like, like, like, like)
	}
	err := q.Order("nome ASC").Find(&fornecedores).Error
	return fornecedores, err
}

func (r *fornecedorRepo) Update(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fornecedorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Fornecedor{}, id).Error
}

func (r *fornecedorRepo) CNPJEmUso(ctx context.Context, cnpj string, exceptID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Fornecedor{}).
		Where("cnpj = ? AND id <> ?", cnpj, exceptID).Count(&n).Error
	return n > 0, err
}

func (r *fornecedorRepo) CountReferencias(ctx context.Context, id uint) (int64, int64, error) {
	var compras, produtos int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.Compra{}).Where("fornecedor_id = ?", id).Count(&compras).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&model.Produto{}).Where("fornecedor_id = ?", id).Count(&produtos).Error; err != nil {
		return 0, 0, err
	}
	return compras, produtos, nil
}
