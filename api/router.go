package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes onto a gin engine. The browser frontend is
// served from another origin, so CORS allows any origin.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	r.GET("/", h.Root)
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)

	protected := r.Group("/", h.AuthMiddleware())
	protected.POST("/expenses", h.CreateExpense)
	protected.GET("/expenses", h.GetExpenses)
	protected.GET("/summary", h.GetSummary)
	protected.GET("/summary/category", h.GetSummaryByCategory)
	protected.GET("/summary/month", h.GetSummaryByMonth)
	protected.DELETE("/expenses/:id", h.DeleteExpense)

	return r
}
