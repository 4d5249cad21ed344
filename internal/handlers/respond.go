package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/httperr"
)

// writeCoreError mapeia a taxonomia do núcleo para HTTP: NotFound vira
// 404, escrita parcial e falha de store viram 500. O núcleo em si não
// conhece HTTP.
func writeCoreError(c *gin.Context, err error, code, message string) {
	switch {
	case domain.IsNotFound(err):
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
	case domain.IsPartialWrite(err):
		httperr.Internal(c, "partial_write_inconsistency", "Operação falhou no meio; parte dos dados persistiu.")
	default:
		httperr.Internal(c, code, message)
	}
}
