// README: Travel plan handler (generate, validate, enrich, return).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fernweh/internal/modules/plan"
)

// planTimeout bounds the whole pipeline, dominated by the generative call.
const planTimeout = 30 * time.Second

type PlanHandler struct {
	plans *plan.Service
}

func NewPlanHandler(planSvc *plan.Service) *PlanHandler {
	return &PlanHandler{plans: planSvc}
}

// Create handles POST /api/plan. The body is an arbitrary JSON object of user
// preferences; unknown fields pass through to the prompt layer untouched.
func (h *PlanHandler) Create(c *gin.Context) {
	var req plan.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	itinerary, err := h.plans.Plan(ctx, req)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, itinerary)
}
