package main

import (
	_ "m2_studio/docs"
	"m2_studio/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           M2 Studio Orders API
// @version         1.0
// @description     Order portal for M2 Studio: submissions, status lifecycle, deliverables, chat, reviews and notifications.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
