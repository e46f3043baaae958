package handler

import (
	"net/http"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar pedido de compra
// @Description  Gera o número do pedido (PREFIXO-AAAAMMDD-NNNN) e grava cabeçalho e itens numa única transação.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.CriarCompraRequest true "Pedido"
// @Success      201  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/compras [post]
func (h *ComprasHandler) Registrar(c *gin.Context) {
	var req dto.CriarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	var criadoPor *uint
	if id := funcionarioID(c); id != 0 {
		criadoPor = &id
	}
	resp, err := h.svc.RegistrarCompra(c.Request.Context(), criadoPor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary  Listar pedidos de compra
// @Tags     compras
// @Produce  json
// @Security BearerAuth
// @Param    fornecedor_id query int    false "Fornecedor"
// @Param    status        query string false "pendente | processando | concluida | cancelada"
// @Param    data_inicio   query string false "DD/MM/YYYY"
// @Param    data_fim      query string false "DD/MM/YYYY"
// @Success  200 {array} dto.CompraResponse
// @Router   /v1/compras [get]
func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarCompras(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) Obter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterCompra(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarStatusCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
