package routes

import (
	"printstudio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathPrice    = "/price"
	PathQuotes   = "/quotes"
	PathSeed     = "/seed"
)

func addPrintshopRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, quoteHandler *handlers.QuoteHandler) {
	rg.GET(PathServices, catalogHandler.ListServices)
	rg.POST(PathPrice, quoteHandler.ComputePrice)
	rg.POST(PathQuotes, quoteHandler.CreateQuote)

	seed := rg.Group(PathSeed)
	{
		// Administrative: populates an empty catalog with the launch offerings.
		seed.POST("/services", catalogHandler.SeedServices)
	}
}
