package routes

import (
	"os"

	"crm-backend/config"
	"crm-backend/controllers"
	"crm-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	store := cookie.NewStore([]byte(sessionSecret()))
	r.Use(sessions.Sessions("crm_session", store))

	r.GET("/", controllers.Root)
	r.GET("/login", controllers.ShowLogin)
	r.POST("/login", controllers.Login)
	r.POST("/register", controllers.Register)
	r.POST("/logout", controllers.Logout)

	authed := r.Group("/", utils.AuthMiddleware())
	{
		authed.GET("/dashboard", controllers.GetDashboard)

		// Customer routes
		customers := authed.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/create", controllers.NewCustomer)
			customers.POST("", controllers.CreateCustomer)
			customers.GET("/:id", controllers.GetCustomer)
			customers.GET("/:id/edit", controllers.EditCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.PATCH("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Contact routes: contacts only appear nested in a customer's
		// edit page, so there is no index or show.
		contacts := authed.Group("/contacts")
		{
			contacts.POST("", controllers.CreateContact)
			contacts.PUT("/:id", controllers.UpdateContact)
			contacts.PATCH("/:id", controllers.UpdateContact)
			contacts.DELETE("/:id", controllers.DeleteContact)
		}
	}

	return r
}

func sessionSecret() string {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return secret
	}
	return "insecure-dev-session-secret"
}
