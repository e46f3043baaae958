package handler

import (
	"net/http"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/apierror"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/gin-gonic/gin"
)

type FuncionariosHandler struct{ svc service.FuncionarioService }

func NewFuncionariosHandler(svc service.FuncionarioService) *FuncionariosHandler {
	return &FuncionariosHandler{svc: svc}
}

// Listar godoc
// @Summary  Listar funcionários
// @Tags     funcionarios
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} dto.FuncionarioResponse
// @Router   /v1/funcionarios [get]
func (h *FuncionariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FuncionariosHandler) Obter(c *gin.Context) {
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
// @Summary  Cadastrar funcionário
// @Tags     funcionarios
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body dto.FuncionarioRequest true "Dados do funcionário"
// @Success  201 {object} dto.FuncionarioResponse
// @Failure  400 {object} apierror.ValidationError
// @Router   /v1/funcionarios [post]
func (h *FuncionariosHandler) Criar(c *gin.Context) {
	var req dto.FuncionarioRequest
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

func (h *FuncionariosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.FuncionarioRequest
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

func (h *FuncionariosHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if id == funcionarioID(c) {
		c.JSON(http.StatusBadRequest, apierror.New("Não é possível excluir o próprio usuário"))
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
