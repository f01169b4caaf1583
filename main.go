package main

import (
	"fmt"
	"log"
	"os"

	"crm-backend/config"
	"crm-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.Migrate(config.DB); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	if err := config.SeedCustomerCategories(config.DB); err != nil {
		log.Fatal("Failed to seed customer categories: ", err)
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
