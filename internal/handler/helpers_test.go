package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{&service.Error{Kind: service.ErrNotFound, Msg: "Produto não encontrado"}, http.StatusNotFound, "Produto não encontrado"},
		{&service.Error{Kind: service.ErrValidation, Msg: "Carrinho vazio"}, http.StatusBadRequest, "Carrinho vazio"},
		{&service.Error{Kind: service.ErrInsufficientStock, Msg: "Estoque insuficiente"}, http.StatusBadRequest, "Estoque insuficiente"},
		{&service.Error{Kind: service.ErrInsufficientPayment, Msg: "Valor pago é menor que o total da venda"}, http.StatusBadRequest, "Valor pago é menor que o total da venda"},
		{&service.Error{Kind: service.ErrNoPendingSale, Msg: "Nenhuma venda em andamento"}, http.StatusConflict, "Nenhuma venda em andamento"},
		{&service.Error{Kind: service.ErrUnauthorized, Msg: "E-mail ou senha inválidos"}, http.StatusUnauthorized, "E-mail ou senha inválidos"},
		// Internal details never reach the client.
		{errors.New("pq: relation \"vendas\" does not exist"), http.StatusInternalServerError, "Erro interno do servidor"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(c, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), tc.detail)
	}
}

func TestBindAndValidate_ReportsNestedJSONFields(t *testing.T) {
	body := `{"itens":[{"produto_id":1,"quantidade":0,"subtotal":5}]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.FinalizarVendaRequest
	assert.False(t, bindAndValidate(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"detail":"Erro de validação","fields":{"itens[0].quantidade":"required"}}`, w.Body.String())
}

func TestParseID(t *testing.T) {
	for param, ok := range map[string]bool{"12": true, "0": false, "-1": false, "abc": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: param}}
		_, got := parseID(c)
		assert.Equal(t, ok, got, param)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
