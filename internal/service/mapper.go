package service

import (
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
)

func enderecoFromDTO(e dto.EnderecoDTO) model.Endereco {
	return model.Endereco{
		CEP:         e.CEP,
		Logradouro:  e.Logradouro,
		Numero:      e.Numero,
		Complemento: e.Complemento,
		Bairro:      e.Bairro,
		Cidade:      e.Cidade,
		UF:          e.UF,
	}
}

func enderecoToDTO(e model.Endereco) dto.EnderecoDTO {
	return dto.EnderecoDTO{
		CEP:         e.CEP,
		Logradouro:  e.Logradouro,
		Numero:      e.Numero,
		Complemento: e.Complemento,
		Bairro:      e.Bairro,
		Cidade:      e.Cidade,
		UF:          e.UF,
	}
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:          c.ID,
		Nome:        c.Nome,
		RG:          c.RG,
		CPF:         c.CPF,
		Email:       c.Email,
		Telefone:    c.Telefone,
		Celular:     c.Celular,
		EnderecoDTO: enderecoToDTO(c.Endereco),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fornecedorToResponse(f *model.Fornecedor) dto.FornecedorResponse {
	return dto.FornecedorResponse{
		ID:          f.ID,
		Nome:        f.Nome,
		CNPJ:        f.CNPJ,
		Email:       f.Email,
		Telefone:    f.Telefone,
		Celular:     f.Celular,
		EnderecoDTO: enderecoToDTO(f.Endereco),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func produtoToResponse(p *model.Produto) dto.ProdutoResponse {
	r := dto.ProdutoResponse{
		ID:           p.ID,
		Descricao:    p.Descricao,
		Preco:        p.Preco,
		QtdEstoque:   p.QtdEstoque,
		FornecedorID: p.FornecedorID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Fornecedor != nil {
		r.FornecedorNome = p.Fornecedor.Nome
	}
	return r
}

func funcionarioToResponse(f *model.Funcionario) dto.FuncionarioResponse {
	return dto.FuncionarioResponse{
		ID:          f.ID,
		Nome:        f.Nome,
		RG:          f.RG,
		CPF:         f.CPF,
		Email:       f.Email,
		Telefone:    f.Telefone,
		Celular:     f.Celular,
		Cargo:       f.Cargo,
		NivelAcesso: f.NivelAcesso,
		EnderecoDTO: enderecoToDTO(f.Endereco),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func compraToResponse(c *model.Compra, loc *time.Location) dto.CompraResponse {
	r := dto.CompraResponse{
		ID:            c.ID,
		NumeroPedido:  c.NumeroPedido,
		FornecedorID:  c.FornecedorID,
		DataCompra:    format.FormatarData(c.DataCompra, loc),
		Status:        c.Status,
		ValorTotal:    c.ValorTotal,
		ValorFrete:    c.ValorFrete,
		ValorDesconto: c.ValorDesconto,
		Observacoes:   c.Observacoes,
		CriadoPorID:   c.CriadoPorID,
		CriadoEm:      c.CriadoEm,
		AtualizadoEm:  c.AtualizadoEm,
		Itens:         make([]dto.ItemCompraResponse, 0, len(c.Itens)),
	}
	if c.Fornecedor != nil {
		r.FornecedorNome = c.Fornecedor.Nome
	}
	if c.CriadoPor != nil {
		r.CriadoPorNome = c.CriadoPor.Nome
	}
	for _, it := range c.Itens {
		item := dto.ItemCompraResponse{
			ID:            it.ID,
			ProdutoID:     it.ProdutoID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
		}
		if it.Produto != nil {
			item.ProdutoDescricao = it.Produto.Descricao
		}
		r.Itens = append(r.Itens, item)
	}
	return r
}
