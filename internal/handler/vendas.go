package handler

import (
	"net/http"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct {
	svc        service.VendaService
	relatorios service.RelatorioService
}

func NewVendasHandler(svc service.VendaService, relatorios service.RelatorioService) *VendasHandler {
	return &VendasHandler{svc: svc, relatorios: relatorios}
}

// Finalizar godoc
// @Summary      Finalizar venda
// @Description  Grava a venda como pendente e baixa o estoque de todos os itens, tudo ou nada.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.FinalizarVendaRequest true "Carrinho"
// @Success      201  {object} dto.FinalizarVendaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/vendas/finalizar [post]
func (h *VendasHandler) Finalizar(c *gin.Context) {
	var req dto.FinalizarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FinalizarVenda(c.Request.Context(), funcionarioID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Pagar godoc
// @Summary      Pagar venda
// @Description  Quita a venda informada (ou a última finalizada pelo operador) e calcula o troco.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.PagarVendaRequest true "Formas de pagamento"
// @Success      200  {object} dto.PagarVendaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/vendas/pagar [post]
func (h *VendasHandler) Pagar(c *gin.Context) {
	var req dto.PagarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PagarVenda(c.Request.Context(), funcionarioID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar godoc
// @Summary  Vendas no período
// @Tags     vendas
// @Produce  json
// @Security BearerAuth
// @Param    data_inicio query    string true "DD/MM/YYYY"
// @Param    data_fim    query    string true "DD/MM/YYYY"
// @Success  200         {object} dto.VendasPeriodoResponse
// @Failure  400         {object} apierror.APIError
// @Router   /v1/vendas [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	var filter dto.PeriodoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.relatorios.VendasNoPeriodo(c.Request.Context(), filter.DataInicio, filter.DataFim)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TotalDoDia godoc
// @Summary  Total vendido no dia
// @Tags     vendas
// @Produce  json
// @Security BearerAuth
// @Param    data query    string true "DD/MM/YYYY"
// @Success  200  {object} dto.TotalDoDiaResponse
// @Failure  400  {object} apierror.APIError
// @Router   /v1/vendas/total [get]
func (h *VendasHandler) TotalDoDia(c *gin.Context) {
	var filter dto.DataFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.relatorios.TotalDoDia(c.Request.Context(), filter.Data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
