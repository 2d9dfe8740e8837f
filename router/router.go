package router

import (
	"time"

	"cashflow/api"
	"cashflow/config"
	_ "cashflow/docs"
	"cashflow/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录，登录注册限流防爆破）
		authHandler := api.NewAuthHandler(cfg, db)
		passwordResetHandler := api.NewPasswordResetHandler(cfg, db)
		auth := v1.Group("/auth")
		{
			loginLimit := middleware.RateLimit(10, time.Minute)
			auth.POST("/register", loginLimit, authHandler.Register)
			auth.POST("/login", loginLimit, authHandler.Login)

			// 密码重置（通过邮件链接）
			resetLimit := middleware.RateLimit(5, time.Minute)
			auth.POST("/password/request-reset", resetLimit, passwordResetHandler.RequestPasswordReset)
			auth.GET("/password/verify-token", passwordResetHandler.VerifyResetToken)
			auth.POST("/password/reset", resetLimit, passwordResetHandler.ResetPassword)
		}

		// 交易类别（无需登录，系统初始化时写入）
		categoryHandler := api.NewCategoryHandler(db)
		v1.GET("/categories", categoryHandler.List)

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 交易记录相关
			transactionHandler := api.NewTransactionHandler(db)
			transactions := authorized.Group("/transactions")
			{
				transactions.POST("", transactionHandler.Create)
				transactions.GET("", transactionHandler.ListByMonth)
				transactions.GET("/recent", transactionHandler.ListRecent)
				transactions.GET("/:id", transactionHandler.Get)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			// 现金流统计相关
			cashflowHandler := api.NewCashflowHandler(db)
			cashflow := authorized.Group("/cashflow")
			{
				cashflow.GET("/annual", cashflowHandler.Annual)
				cashflow.GET("/years", cashflowHandler.Years)
				cashflow.GET("/monthly", cashflowHandler.MonthlyStats)
			}

			// 导出相关
			exportHandler := api.NewExportHandler(db)
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
