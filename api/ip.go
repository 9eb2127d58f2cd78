package api

/**
 * ip.go - client address echo
 */

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

/**
 * Attaches /api/ip handler
 */
func attachIp(app *gin.RouterGroup) {
	app.GET("/ip", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ip": clientIP(c.Request)})
	})
}

/**
 * First X-Forwarded-For entry, or the peer address.
 * IPv4-mapped IPv6 prefix is stripped.
 */
func clientIP(r *http.Request) string {

	ip := ""

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip = strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if ip == "" {
		ip = r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
	}

	return strings.TrimPrefix(ip, "::ffff:")
}
