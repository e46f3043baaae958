package repository

import (
	"context"
	"strings"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for customers.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	// FindByCPF expects the normalized CPF.
	FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error)
	Search(ctx context.Context, termo string) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, id uint) error
	// CPFEmUso reports whether another customer (id != exceptID) holds cpf.
	CPFEmUso(ctx context.Context, cpf string, exceptID uint) (bool, error)
	CountVendas(ctx context.Context, id uint) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Search(ctx context.Context, termo string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Model(&model.Cliente{})
	if strings.TrimSpace(termo) != "" {
		like := likeTermo(termo)
		cond := "LOWER(nome) LIKE ? OR LOWER(cpf) LIKE ? OR LOWER(email) LIKE ? OR " +
			"LOWER(telefone) LIKE ? OR LOWER(celular) LIKE ? OR LOWER(cidade) LIKE ?"
		args := []interface{}{like, like, like, like, like, like}
		// "123.456" must still hit the stored "12345678900".
		if doc := format.NormalizarDocumento(termo); doc != "" {
			cond += " OR cpf LIKE ?"
			args = append(args, "%"+doc+"%")
		}
		q = q.Where(cond, args...)
	}
	err := q.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) CPFEmUso(ctx context.Context, cpf string, exceptID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("cpf = ? AND id <> ?", cpf, exceptID).Count(&n).Error
	return n > 0, err
}

func (r *clienteRepo) CountVendas(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).Where("cliente_id = ?", id).Count(&n).Error
	return n, err
}
