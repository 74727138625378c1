// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fernweh/internal/modules/plan"
)

type errorResponse struct {
	Error   string           `json:"error"`
	Details []plan.Violation `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps pipeline failures onto the HTTP contract: schema
// violations are a diagnostic 400 with the full violation list, generation
// failures a 502 carrying the reason, everything else an opaque 500.
func writePlanError(c *gin.Context, err error) {
	var ve *plan.ValidationError
	var me *plan.MalformedGenerationError
	switch {
	case errors.As(err, &ve):
		writeJSON(c, http.StatusBadRequest, errorResponse{
			Error:   "invalid travel plan",
			Details: ve.Violations,
		})
	case errors.As(err, &me):
		writeError(c, http.StatusBadGateway, me.Error())
	case errors.Is(err, plan.ErrEmptyGeneration):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
