package handler

import (
	"net/http"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/gin-gonic/gin"
)

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

// Listar godoc
// @Summary      Buscar fornecedores
// @Description  Busca por nome, CNPJ, e-mail ou cidade. Sem termo retorna todos.
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Param        q   query    string false "Termo de busca"
// @Success      200 {array}  dto.FornecedorResponse
// @Router       /v1/fornecedores [get]
func (h *FornecedoresHandler) Listar(c *gin.Context) {
	var filter dto.BuscaFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter.Termo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FornecedoresHandler) Obter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar godoc
// @Summary  Cadastrar fornecedor
// @Tags     fornecedores
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body dto.FornecedorRequest true "Dados do fornecedor"
// @Success  201 {object} dto.FornecedorResponse
// @Failure  400 {object} apierror.ValidationError
// @Router   /v1/fornecedores [post]
func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.FornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FornecedoresHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.FornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary      Excluir fornecedor
// @Description  Recusado enquanto houver compras ou produtos do fornecedor.
// @Tags         fornecedores
// @Security     BearerAuth
// @Param        id  path int true "ID do fornecedor"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/fornecedores/{id} [delete]
func (h *FornecedoresHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
