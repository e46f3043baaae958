package middleware

import (
	"net/http"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const erroInterno = "Erro interno do servidor"

// comOperador adds the request id and, on authenticated routes, the
// employee behind the request. Sales and payments are traced by operator.
func comOperador(c *gin.Context, ev *zerolog.Event) *zerolog.Event {
	ev = ev.Str("request_id", c.GetString(RequestIDKey))
	if claims := GetClaims(c); claims != nil {
		ev = ev.Uint("funcionario_id", claims.FuncionarioID).Int("nivel", claims.Nivel)
	}
	return ev
}

// ErrorHandler turns errors attached with c.Error into a generic 500 when the
// handler did not already answer. Internal messages only reach the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			comOperador(c, log.Error()).
				Str("method", c.Request.Method).
				Str("path", c.FullPath()).
				Err(e.Err).
				Msg("unhandled error")
		}
		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New(erroInterno))
	}
}

// Recovery turns a panic into a 500. A panic halfway through a sale leaves
// the transaction to roll back on its own; only the operator needs telling.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				comOperador(c, log.Error()).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New(erroInterno))
			}
		}()
		c.Next()
	}
}

// Logger writes one line per request. 5xx log at error, 4xx at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		}
		comOperador(c, ev).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
