package routes

import (
	"murilov3d/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.Preview)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.GET("/:id/edit-form", quoteHandler.GetEditForm)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.GET("/:id/share", quoteHandler.ShareQuote)
	}
}
