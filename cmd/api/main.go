package main

import (
	_ "printstudio/docs"
	"printstudio/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Print Studio API
// @version         1.0
// @description     Print-shop storefront backend (catalog, pricing, quotes) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
