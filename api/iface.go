package api

/**
 * iface.go - /api/iface rest api implementation
 */

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ifgraph/ifgraph/graph"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/ifgraph/ifgraph/metrics"
)

const defaultImageContentType = "image/gif"

/**
 * Attaches /api/iface handlers
 */
func attachIface(app *gin.RouterGroup, upstream Upstream) {

	log := logging.For("api/iface")

	/**
	 * Statistics extracted from the interface graph page
	 */
	app.GET("/:iface/stats", func(c *gin.Context) {

		iface := c.Param("iface")

		page, err := upstream.FetchText(c.Request.Context(), iface)
		if err != nil {
			log.WithField("iface", iface).Warn(err)
			c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		result := graph.Parse(page, iface)
		metrics.ReportResult(result)

		c.IndentedJSON(http.StatusOK, result)
	})

	/**
	 * Graph image of the interface, forwarded as is
	 */
	app.GET("/:iface/graph/:window", func(c *gin.Context) {

		iface := c.Param("iface")

		window, err := graph.ParseWindow(c.Param("window"))
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid type")
			return
		}

		data, contentType, err := upstream.FetchBinary(c.Request.Context(), iface, window)
		if err != nil {
			log.WithField("iface", iface).Warn(err)
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		if contentType == "" {
			contentType = defaultImageContentType
		}

		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, contentType, data)
	})
}
