package api

/**
 * interfaces.go - interface metadata for the dashboard
 */

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ifgraph/ifgraph/inventory"
)

/**
 * Attaches /api/interfaces and /config.js
 */
func attachInterfaces(r *gin.Engine, inv *inventory.Inventory) {

	r.GET("/api/interfaces", func(c *gin.Context) {
		c.IndentedJSON(http.StatusOK, gin.H{
			"system":     inv.System(),
			"interfaces": inv.Entries(),
		})
	})

	/**
	 * Same data as an ES module, imported by the dashboard
	 */
	r.GET("/config.js", func(c *gin.Context) {
		module, err := inv.Module()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "application/javascript; charset=utf-8", module)
	})
}
