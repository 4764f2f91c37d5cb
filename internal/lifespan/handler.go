package lifespan

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"lifespan-backend/internal/lifecalc"
	"lifespan-backend/internal/shared/server/middleware"
	"lifespan-backend/internal/shared/server/respond"
)

const dateLayout = "2006-01-02"

// Scorer computes a result for one factor record.
type Scorer interface {
	Calculate(ctx context.Context, f lifecalc.FactorRecord) (lifecalc.CalculationResult, error)
}

// Handler serves the stateless scoring endpoints.
type Handler struct {
	Scorer   Scorer
	Baseline lifecalc.BaselineTable
	Now      func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(scorer Scorer, baseline lifecalc.BaselineTable) *Handler {
	return &Handler{Scorer: scorer, Baseline: baseline, Now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/lifespan/calculate", h.calculate)
	rg.POST("/bmi", h.bmi)
	rg.GET("/countdown", h.countdown)
	rg.GET("/factors", h.factors)
}

type calculateResponse struct {
	lifecalc.CalculationResult
	Breakdown   []lifecalc.BreakdownEntry `json:"breakdown"`
	BMIAnalysis *lifecalc.BMIAnalysis     `json:"bmiAnalysis,omitempty"`
}

func (h *Handler) calculate(c *gin.Context) {
	if h.Scorer == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}

	var req lifecalc.FactorRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	result, err := h.Scorer.Calculate(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to calculate lifespan", nil)
		return
	}

	resp := calculateResponse{CalculationResult: result, Breakdown: result.Breakdown()}
	if analysis, ok := lifecalc.ClassifyBMI(req.BMI); ok {
		resp.BMIAnalysis = &analysis
	}
	c.Set(middleware.HealthScoreKey, string(result.HealthScore))
	respond.OK(c, resp)
}

type bmiRequest struct {
	BMI      float64 `json:"bmi" binding:"omitempty,gt=0,lte=200"`
	HeightCm float64 `json:"heightCm" binding:"omitempty,gt=0,lte=300"`
	WeightKg float64 `json:"weightKg" binding:"omitempty,gt=0,lte=700"`
}

type bmiResponse struct {
	BMI float64 `json:"bmi"`
	lifecalc.BMIAnalysis
}

func (h *Handler) bmi(c *gin.Context) {
	var req bmiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	value := req.BMI
	if value == 0 {
		value = lifecalc.ComputeBMI(req.HeightCm, req.WeightKg)
	}
	analysis, ok := lifecalc.ClassifyBMI(value)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "bmi or height and weight required", []respond.FieldIssue{
			{Field: "bmi", Issue: "is required"},
		})
		return
	}
	respond.OK(c, bmiResponse{
		BMI:         lifecalc.RoundOneDecimal(decimal.NewFromFloat(value)),
		BMIAnalysis: analysis,
	})
}

type countdownQuery struct {
	DOB      string  `form:"dob" binding:"required,datetime=2006-01-02"`
	Lifespan float64 `form:"lifespan" binding:"required,gt=0,lte=150"`
}

type countdownResponse struct {
	DOB          string    `json:"dob"`
	Lifespan     float64   `json:"lifespan"`
	ProjectedEnd time.Time `json:"projectedEnd"`
	lifecalc.Countdown
}

func (h *Handler) countdown(c *gin.Context) {
	var q countdownQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BindError(c, err)
		return
	}
	dob, err := time.ParseInLocation(dateLayout, q.DOB, time.UTC)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request fields", []respond.FieldIssue{
			{Field: "dob", Issue: "must be a date in " + dateLayout + " format"},
		})
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	respond.OK(c, countdownResponse{
		DOB:          q.DOB,
		Lifespan:     q.Lifespan,
		ProjectedEnd: lifecalc.ProjectedEnd(dob, q.Lifespan),
		Countdown:    lifecalc.TimeLeft(dob, q.Lifespan, now().UTC()),
	})
}

func (h *Handler) factors(c *gin.Context) {
	respond.OK(c, gin.H{
		"dimensions": lifecalc.Catalog(),
		"countries":  h.Baseline.CountryCodes(),
		"genders":    []string{lifecalc.GenderMale, lifecalc.GenderFemale, lifecalc.GenderOther},
	})
}
