package handler

import (
	"net/http"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Listar godoc
// @Summary      Buscar clientes
// @Description  Busca por nome, CPF, e-mail, telefone, celular ou cidade. Sem termo retorna todos.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        q   query    string false "Termo de busca"
// @Success      200 {array}  dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
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

func (h *ClientesHandler) Obter(c *gin.Context) {
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

// ObterPorCPF godoc
// @Summary      Consultar cliente por CPF
// @Description  Usado pelo caixa. Aceita CPF com ou sem pontuação.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        cpf path     string true "CPF"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/cpf/{cpf} [get]
func (h *ClientesHandler) ObterPorCPF(c *gin.Context) {
	resp, err := h.svc.ObterPorCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar godoc
// @Summary  Cadastrar cliente
// @Tags     clientes
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body dto.ClienteRequest true "Dados do cliente"
// @Success  201 {object} dto.ClienteResponse
// @Failure  400 {object} apierror.ValidationError
// @Router   /v1/clientes [post]
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.ClienteRequest
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

func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ClienteRequest
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

func (h *ClientesHandler) Excluir(c *gin.Context) {
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
