package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/paniermalin/backend/internal/domain"
	"github.com/paniermalin/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping *usecase.ShoppingService
	parser   *usecase.Parser
	log      *zap.SugaredLogger
}

// NewHandler creates a new HTTP handler
func NewHandler(shopping *usecase.ShoppingService, parser *usecase.Parser, log *zap.SugaredLogger) *Handler {
	return &Handler{shopping: shopping, parser: parser, log: log}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "paniermalin-backend",
		"version": "1.0.0",
	})
}

type shoppingListRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	People      int      `json:"people" binding:"required"`
	Budget      float64  `json:"budget"`
}

// GenerateShoppingList builds a priced, consolidated shopping list from a
// week's ingredient phrases.
func (h *Handler) GenerateShoppingList(c *gin.Context) {
	var req shoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	list, err := h.shopping.Generate(c.Request.Context(), req.Ingredients, req.People, req.Budget)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

type parseRequest struct {
	Phrase string `json:"phrase" binding:"required"`
}

// ParseIngredient exposes the ingredient parser standalone, for callers
// that need finer-grained control than full list generation.
func (h *Handler) ParseIngredient(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.parser.Parse(req.Phrase))
}

type quantityRequest struct {
	Phrase string `json:"phrase" binding:"required"`
	People int    `json:"people" binding:"required"`
	Meals  int    `json:"meals"`
}

// ComputeQuantity returns the purchase quantity for one ingredient; a UI
// can re-render quantities live as the household size changes.
func (h *Handler) ComputeQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Meals == 0 {
		req.Meals = 1
	}

	parsed := h.parser.Parse(req.Phrase)
	amount, unit, err := usecase.QuantityFor(parsed, req.People, req.Meals)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredient": parsed,
		"amount":     amount,
		"unit":       unit,
	})
}

// respondError maps domain errors to HTTP status codes.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPeopleCount),
		errors.Is(err, domain.ErrInvalidMealCount),
		errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.log.Errorw("catalog unavailable", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog temporarily unavailable, please retry"})
	default:
		h.log.Errorw("unexpected error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
