package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns one restaurant with its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description List every restaurant without its restaurant_pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.APIError
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		respondInternalError(ctx, "Failed to retrieve restaurants", err)
		return
	}
	ctx.JSON(http.StatusOK, models.RestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant together with the pizzas it offers
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.APIError
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	detail, err := c.service.GetRestaurantDetail(ctx.Request.Context(), id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, "Failed to retrieve restaurant", err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant_pizza it owns
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.APIError
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		respondRestaurantNotFound(ctx)
		return
	}

	err := c.service.DeleteRestaurant(ctx.Request.Context(), id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		respondRestaurantNotFound(ctx)
		return
	}
	if err != nil {
		respondInternalError(ctx, "Failed to delete restaurant", err)
		return
	}
	requestLog(ctx).WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}
