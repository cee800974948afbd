package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

// CreateRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        *int `json:"price" binding:"required"`
	PizzaID      *int `json:"pizza_id" binding:"required"`
	RestaurantID *int `json:"restaurant_id" binding:"required"`
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant. The price must be between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.APIError
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		requestLog(ctx).WithError(err).Debug("Invalid restaurant pizza body")
		respondValidationErrors(ctx)
		return
	}

	detail, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), *req.Price, *req.RestaurantID, *req.PizzaID)
	if models.IsValidationError(err) {
		requestLog(ctx).WithError(err).Debug("Restaurant pizza rejected")
		respondValidationErrors(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, "Failed to create restaurant pizza", err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}
