package router

import (
	"github.com/eyesdeal/eyesdeal-backend/config"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/controller"
	"github.com/eyesdeal/eyesdeal-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController     *controller.AuthController
	masterController   *controller.MasterController
	productController  *controller.ProductController
	storeController    *controller.StoreController
	saleController     *controller.SaleController
	purchaseController *controller.PurchaseController
	recallController   *controller.RecallController
	uploadController   *controller.UploadController
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	masterController *controller.MasterController,
	productController *controller.ProductController,
	storeController *controller.StoreController,
	saleController *controller.SaleController,
	purchaseController *controller.PurchaseController,
	recallController *controller.RecallController,
	uploadController *controller.UploadController,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		masterController:   masterController,
		productController:  productController,
		storeController:    storeController,
		saleController:     saleController,
		purchaseController: purchaseController,
		recallController:   recallController,
		uploadController:   uploadController,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "EYESDEAL API is running",
		})
	})

	authenticate := middleware.AuthMiddleware(r.config.JWT.Secret)
	adminOnly := middleware.RequireType("admin")

	auth := router.Group("/auth")
	{
		auth.POST("/login", r.authController.Login)
		auth.POST("/register", authenticate, adminOnly, r.authController.Register)
		auth.GET("/me", authenticate, r.authController.Me)
	}

	master := router.Group("/master")
	master.Use(authenticate)
	{
		master.GET("/:attributeType", r.masterController.ListAttributes)
		master.POST("/:attributeType", r.masterController.CreateAttribute)
		master.PATCH("/:attributeType", r.masterController.UpdateAttribute)
		master.DELETE("/:attributeType/:id", r.masterController.DeleteAttribute)
	}

	products := router.Group("/products")
	products.Use(authenticate)
	{
		products.GET("", r.productController.ListProducts)
		products.GET("/:id", r.productController.GetProduct)
		products.POST("", r.productController.CreateProduct)
		products.PATCH("", r.productController.UpdateProduct)
		products.DELETE("/:id", r.productController.DeleteProduct)
	}

	stores := router.Group("/stores")
	stores.Use(authenticate)
	{
		stores.GET("", r.storeController.ListStores)
		stores.GET("/:id", r.storeController.GetStore)
		stores.POST("", adminOnly, r.storeController.CreateStore)
		stores.PATCH("/:id", adminOnly, r.storeController.UpdateStore)
		stores.DELETE("/:id", adminOnly, r.storeController.DeleteStore)
	}

	organizations := router.Group("/organizations")
	organizations.Use(authenticate)
	{
		organizations.GET("", r.storeController.ListOrganizations)
		organizations.POST("", adminOnly, r.storeController.CreateOrganization)
	}

	sales := router.Group("/sales")
	sales.Use(authenticate)
	{
		sales.GET("", r.saleController.ListByStore)
		sales.GET("/:id", r.saleController.GetSale)
		sales.POST("", r.saleController.CreateSale)
	}

	purchases := router.Group("/purchases")
	purchases.Use(authenticate)
	{
		purchases.GET("", r.purchaseController.ListByStore)
		purchases.GET("/:id", r.purchaseController.GetPurchase)
		purchases.POST("", r.purchaseController.CreatePurchase)
		purchases.DELETE("/:id", r.purchaseController.DeletePurchase)
	}

	report := router.Group("/report")
	report.Use(authenticate)
	{
		report.GET("/recall/store", r.recallController.ListByStore)
		report.POST("/recall", r.recallController.Report)
		report.PATCH("/recall", r.recallController.UpdateRecall)
		report.POST("/recall/export", r.recallController.ExportReport)
	}

	upload := router.Group("/upload")
	upload.Use(authenticate)
	{
		upload.POST("", r.uploadController.UploadFile)
		upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
