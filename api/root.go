package api

/**
 * root.go - /api rest api implementation
 */

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/info"
	"github.com/ifgraph/ifgraph/utils/codec"
)

/**
 * Attaches /api handlers
 */
func attachRoot(app *gin.RouterGroup, cfg config.Config) {

	/**
	 * Global info
	 */
	app.GET("/", func(c *gin.Context) {

		c.IndentedJSON(http.StatusOK, gin.H{
			"pid":           os.Getpid(),
			"time":          time.Now(),
			"startTime":     info.StartTime,
			"uptime":        time.Since(info.StartTime).String(),
			"version":       info.Version,
			"configuration": info.Configuration,
		})
	})

	/**
	 * Dump current config, secrets masked
	 */
	app.GET("/dump", func(c *gin.Context) {
		format := c.DefaultQuery("format", codec.Toml)

		data, err := codec.Encode(cfg.Masked(), format)
		if err != nil {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.String(http.StatusOK, data)
	})
}
