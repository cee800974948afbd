package router

import (
	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName identifies this service in health responses and metric names
const ServiceName = "restaurant-pizza-api"

// Options carries what the router needs from the process
type Options struct {
	DB      *gorm.DB
	Logger  *logrus.Logger
	Metrics *middleware.Metrics
}

// SetupRouter builds the services and controllers on top of opts.DB and
// registers every route
func SetupRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = middleware.NewMetrics("restaurant_pizza_api")
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		opts.Metrics.Handler(),
		gin.Recovery(),
	)

	appController := controllers.NewAppController(ServiceName, func() error { return database.Ping(opts.DB) })
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(opts.DB))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(opts.DB))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(opts.DB))

	router.GET("/", appController.Index)
	router.GET("/health", appController.Health)
	router.GET("/metrics", opts.Metrics.Exposition())

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
