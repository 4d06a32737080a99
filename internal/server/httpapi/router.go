package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes.
//
//	POST   /api/auth/signup
//	POST   /api/auth/signin
//	POST   /api/auth/signout
//	GET    /api/gadgets?status=
//	GET    /api/gadgets/:id
//	POST   /api/gadgets
//	PATCH  /api/gadgets
//	DELETE /api/gadgets
//	POST   /api/gadgets/:id/self-destruct
//	GET    /healthz
func NewRouter(h *Handlers, logger logging.Logger) *gin.Engine {
	registerValidations()

	engine := gin.New()
	engine.Use(recovery(logger), accessLog(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, envelope{Success: true, Data: gin.H{"status": "ok"}})
	})

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.SignUp)
	authGroup.POST("/signin", h.SignIn)
	authGroup.POST("/signout", h.SignOut)

	gadgets := api.Group("/gadgets", requireAdmin(h.gate, logger))
	gadgets.GET("", h.ListGadgets)
	gadgets.GET("/:id", h.GetGadget)
	gadgets.POST("", h.CreateGadget)
	gadgets.PATCH("", h.UpdateGadget)
	gadgets.DELETE("", h.DecommissionGadget)
	gadgets.POST("/:id/self-destruct", h.SelfDestructGadget)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: "Route not found"})
	})

	return engine
}
