package api

import (
	"log"
	stdhttp "net/http"

	intconfig "datatable/internal/config"
	"datatable/internal/dataset"
	h "datatable/internal/http/handlers"
	"datatable/internal/http/middleware"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "datatable/docs"
)

// NewRouter builds the gin engine around a dataset store constructed at
// startup; nothing here lazily regenerates data.
func NewRouter(env intconfig.Env, store *dataset.Store) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.NewAPI(store, env)

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/routes", h.Routes)

		employees := api.Group("/employees")
		employees.GET("", a.GetEmployees)
		employees.GET("/filters", a.GetEmployeeFilters)
		employees.GET("/export", a.ExportEmployees)
		employees.GET("/:id", a.GetEmployeeByID)
	}

	r.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))

	h.SetRouter(r)
	return r
}
