package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kronos/internal/auth"
	"kronos/internal/handler"
	"kronos/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	identity *auth.JWTService,
	roles service.RoleService,
	productHandler *handler.ProductHandler,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	seedHandler *handler.SeedHandler,
	storageRoot string,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("50M"))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images resolve under /storage
	e.Static("/storage", storageRoot)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/products", productHandler.ListProducts)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", auth.Middleware(identity))
	secured.GET("/me", profileHandler.Me)

	// Admin routes: token check runs first, then the fail-closed role gate
	admin := secured.Group("", auth.RequireAdmin(roles))
	admin.POST("/products", productHandler.CreateProduct)
	admin.POST("/products/upload-image", productHandler.UploadImage)
	admin.POST("/seed/products", seedHandler.SeedProducts)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
