package calculations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lifespan-backend/internal/lifecalc"
	"lifespan-backend/internal/shared/server/middleware"
	"lifespan-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches calculation history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculations", h.create)
	rg.GET("/calculations", h.list)
	rg.GET("/calculations/:id", h.get)
	rg.DELETE("/calculations/:id", h.delete)
}

type calculationResponse struct {
	ID        string                     `json:"id"`
	CreatedAt time.Time                  `json:"createdAt"`
	Factors   lifecalc.FactorRecord      `json:"factors"`
	Result    lifecalc.CalculationResult `json:"result"`
}

func toResponse(calc Calculation) calculationResponse {
	return calculationResponse{
		ID:        calc.ID,
		CreatedAt: calc.CreatedAt,
		Factors:   calc.Factors,
		Result:    calc.Result,
	}
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req lifecalc.FactorRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	calc, err := h.Svc.Save(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store calculation", nil)
		}
		return
	}

	c.Set(middleware.CalculationIDKey, calc.ID)
	c.Set(middleware.HealthScoreKey, string(calc.Result.HealthScore))
	respond.Created(c, toResponse(calc))
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	limit := parseNonNegative(c.Query("limit"), defaultListLimit)
	offset := parseNonNegative(c.Query("offset"), 0)

	calcs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list calculations", nil)
		return
	}

	items := make([]calculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		items = append(items, toResponse(calc))
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	calc, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.Set(middleware.CalculationIDKey, calc.ID)
	respond.OK(c, toResponse(calc))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		writeLookupError(c, err)
		return
	}
	c.Set(middleware.CalculationIDKey, id)
	respond.NoContent(c)
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "calculation not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch calculation", nil)
}

func parseNonNegative(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
