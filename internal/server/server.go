// Package server exposes the deal calculators over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itpenciles/deal-engine/internal/cache"
	"github.com/itpenciles/deal-engine/internal/engine"
	"github.com/itpenciles/deal-engine/pkg/validation"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProjectionRequest carries the property financials plus the growth
// assumptions for a thirty-year run.
type ProjectionRequest struct {
	Financials  engine.Financials            `json:"financials"`
	Assumptions engine.ProjectionAssumptions `json:"assumptions"`
}

type handler struct {
	logger  *zap.Logger
	results cache.Cache
}

// NewRouter constructs the gin engine serving the calculator API.
func NewRouter(logger *zap.Logger, results cache.Cache, allowedOrigins []string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if results == nil {
		results = cache.NewMemoryCache()
	}

	h := &handler{logger: logger, results: results}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(CORS(allowedOrigins))
	router.Use(ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/metrics/rental", h.handleRental)
		api.POST("/metrics/wholesale", h.handleWholesale)
		api.POST("/metrics/subjectto", h.handleSubjectTo)
		api.POST("/metrics/sellerfinancing", h.handleSellerFinancing)
		api.POST("/metrics/brrrr", h.handleBrrrr)
		api.POST("/projection", h.handleProjection)
	}

	return router
}

func (h *handler) handleRental(c *gin.Context) {
	var req engine.Financials
	if !h.bind(c, &req) {
		return
	}
	if err := validation.ValidateFinancials(req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	h.respondCached(c, "rental", req, func() interface{} {
		return engine.ComputeRentalMetrics(req)
	})
}

func (h *handler) handleWholesale(c *gin.Context) {
	var req engine.WholesaleInputs
	if !h.bind(c, &req) {
		return
	}
	if err := validation.ValidateWholesaleInputs(req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	h.respondCached(c, "wholesale", req, func() interface{} {
		return engine.ComputeWholesale(req)
	})
}

func (h *handler) handleSubjectTo(c *gin.Context) {
	var req engine.SubjectToInputs
	if !h.bind(c, &req) {
		return
	}
	if err := validation.ValidateSubjectToInputs(req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	h.respondCached(c, "subjectto", req, func() interface{} {
		return engine.ComputeSubjectTo(req)
	})
}

func (h *handler) handleSellerFinancing(c *gin.Context) {
	var req engine.SellerFinancingInputs
	if !h.bind(c, &req) {
		return
	}
	if err := validation.ValidateSellerFinancingInputs(req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	h.respondCached(c, "sellerfinancing", req, func() interface{} {
		return engine.ComputeSellerFinancing(req)
	})
}

func (h *handler) handleBrrrr(c *gin.Context) {
	var req engine.BrrrrInputs
	if !h.bind(c, &req) {
		return
	}
	if err := validation.ValidateBrrrrInputs(req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	h.respondCached(c, "brrrr", req, func() interface{} {
		return engine.ComputeBrrrr(req)
	})
}

func (h *handler) handleProjection(c *gin.Context) {
	var req ProjectionRequest
	if !h.bind(c, &req) {
		return
	}
	if err := validation.ValidateFinancials(req.Financials); err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := validation.ValidateAssumptions(req.Assumptions); err != nil {
		h.respondInvalid(c, err)
		return
	}
	h.respondCached(c, "projection", req, func() interface{} {
		return engine.ProjectThirtyYears(req.Financials, req.Assumptions)
	})
}

func (h *handler) bind(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return false
	}
	return true
}

func (h *handler) respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_INPUT",
			Message: err.Error(),
		},
	})
}

// respondCached serves a previously computed result for an identical payload
// when available, otherwise computes, stores, and serves a fresh one.
func (h *handler) respondCached(c *gin.Context, prefix string, payload interface{}, compute func() interface{}) {
	key, err := cache.Key(prefix, payload)
	if err != nil {
		h.logger.Warn("failed to derive cache key",
			zap.String("op", "server.respondCached"),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, compute())
		return
	}

	if cached, ok := h.results.Get(c.Request.Context(), key); ok {
		c.Header("X-Cache", "HIT")
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	result := compute()
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, result)

	data, err := marshalResult(result)
	if err != nil {
		h.logger.Warn("failed to serialize result for caching",
			zap.String("op", "server.respondCached"),
			zap.Error(err),
		)
		return
	}
	if err := h.results.Set(c.Request.Context(), key, data); err != nil {
		h.logger.Warn("failed to store result in cache",
			zap.String("op", "server.respondCached"),
			zap.Error(err),
		)
	}
}

func marshalResult(result interface{}) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
