package api

/**
 * public.go - health and static files
 */

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

/**
 * Attaches / handlers
 */
func attachPublic(app *gin.RouterGroup) {

	/**
	 * Simple 200 and OK response
	 */
	app.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}

/**
 * Serves dashboard files for every path no handler matched
 */
func attachStatic(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
}
