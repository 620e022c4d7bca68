package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arcana/config"
	"arcana/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/products", h.getCatalogProducts)
			catalog.GET("/products/:id", h.getCatalogProductByID)
			catalog.GET("/specialists", h.getCatalogSpecialists)
			catalog.GET("/specialists/:id", h.getCatalogSpecialistByID)
		}

		news := api.Group("/news")
		{
			news.GET("/", h.getNews)
			news.GET("/:slug", h.getNewsBySlug)
		}

		products := api.Group("/products")
		products.Use(h.authMiddleware())
		{
			products.POST("/", h.createProduct)
			products.PUT("/:id", h.updateProduct)
			products.DELETE("/:id", h.deleteProduct)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id", h.updateUser)
			users.DELETE("/:id", h.deleteUser)
			users.PUT("/me/password", h.updatePassword)
		}

		media := api.Group("/media")
		media.Use(h.authMiddleware())
		{
			media.POST("/", h.uploadMedia)
			media.DELETE("/:id", h.deleteMedia)
		}

		consultation := api.Group("/consultation")
		consultation.Use(h.authMiddleware())
		{
			consultation.POST("/join", h.joinConsultation)
		}
	}
}
