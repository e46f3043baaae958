package repository

import (
	"context"
	"strings"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"gorm.io/gorm"
)

type FuncionarioRepository interface {
	Create(ctx context.Context, f *model.Funcionario) error
	FindByID(ctx context.Context, id uint) (*model.Funcionario, error)
	FindByEmail(ctx context.Context, email string) (*model.Funcionario, error)
	List(ctx context.Context) ([]model.Funcionario, error)
	Update(ctx context.Context, f *model.Funcionario) error
	Delete(ctx context.Context, id uint) error
	EmailEmUso(ctx context.Context, email string, exceptID uint) (bool, error)
	// CountReferencias counts sales and purchase orders recorded by the employee.
	CountReferencias(ctx context.Context, id uint) (int64, error)
}

type funcionarioRepo struct{ db *gorm.DB }

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository { return &funcionarioRepo{db: db} }

func (r *funcionarioRepo) Create(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *funcionarioRepo) FindByID(ctx context.Context, id uint) (*model.Funcionario, error) {
	var f model.Funcionario
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepo) FindByEmail(ctx context.Context, email string) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepo) List(ctx context.Context) ([]model.Funcionario, error) {
	var fs []model.Funcionario
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&fs).Error
	return fs, err
}

func (r *funcionarioRepo) Update(ctx context.Context, f *model.Funcionario) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *funcionarioRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Funcionario{}, id).Error
}

func (r *funcionarioRepo) EmailEmUso(ctx context.Context, email string, exceptID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Funcionario{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(email)), exceptID).
		Count(&n).Error
	return n > 0, err
}

func (r *funcionarioRepo) CountReferencias(ctx context.Context, id uint) (int64, error) {
	var vendas, compras int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.Venda{}).Where("funcionario_id = ?", id).Count(&vendas).Error; err != nil {
		return 0, err
	}
	if err := db.Model(&model.Compra{}).Where("criado_por_id = ?", id).Count(&compras).Error; err != nil {
		return 0, err
	}
	return vendas + compras, nil
}
