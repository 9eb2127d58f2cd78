package api

/**
 * api.go - rest api and dashboard server
 */

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/graph"
	"github.com/ifgraph/ifgraph/inventory"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/ifgraph/ifgraph/service"
	"github.com/ifgraph/ifgraph/utils/proxyprotocol"
)

/**
 * Upstream is the device the graphs come from
 */
type Upstream interface {
	FetchText(ctx context.Context, iface string) (string, error)
	FetchBinary(ctx context.Context, iface string, w graph.Window) ([]byte, string, error)
}

/**
 * Server serves api and static dashboard files
 */
type Server struct {
	cfg    config.Config
	engine *gin.Engine
	http   *http.Server
}

/**
 * New creates server and attaches all handlers
 */
func New(cfg config.Config, upstream Upstream, inv *inventory.Inventory) *Server {

	r := gin.New()

	// keep escaped slashes inside :iface
	r.UseRawPath = true
	r.UnescapePathValues = true

	r.Use(gin.Recovery(), requestLogger())

	/* ----- optional middleware ----- */

	if cfg.Api.Cors {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
		r.Use(cors.New(corsConfig))
	}

	if cfg.Api.BasicAuth != nil && cfg.Api.BasicAuth.Login != "" {
		r.Use(gin.BasicAuth(gin.Accounts{
			cfg.Api.BasicAuth.Login: cfg.Api.BasicAuth.Password,
		}))
	}

	/* ----- handlers ----- */

	attachRoot(r.Group("/api"), cfg)
	attachIface(r.Group("/api/iface"), upstream)
	attachIp(r.Group("/api"))
	attachInterfaces(r, inv)
	attachPublic(r.Group("/"))
	attachStatic(r, cfg.Api.StaticDir)

	return &Server{
		cfg:    cfg,
		engine: r,
		http: &http.Server{
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

/**
 * Handler exposes router, mainly for tests
 */
func (s *Server) Handler() http.Handler {
	return s.engine
}

/**
 * Start listening and block until server is shut down
 */
func (s *Server) Start() error {

	log := logging.For("api")

	ln, err := proxyprotocol.Listen(s.cfg.Api.Bind, s.cfg.Api.ProxyProtocol)
	if err != nil {
		return err
	}

	tlsConfig, err := service.TlsConfig(s.cfg.Api.Tls)
	if err != nil {
		ln.Close()
		return err
	}

	if tlsConfig != nil {
		ln = tls.NewListener(ln, tlsConfig)
		log.Info("Starting up API on https://", s.cfg.Api.Bind)
	} else {
		log.Info("Starting up API on http://", s.cfg.Api.Bind)
	}

	if s.cfg.Api.ProxyProtocol {
		log.Info("Expecting PROXY protocol headers")
	}

	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

/**
 * Shutdown stops accepting and waits for in-flight requests
 */
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

/**
 * Logs every request at debug level
 */
func requestLogger() gin.HandlerFunc {

	log := logging.For("api")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugf("%s %s %s %d %v",
			c.Request.RemoteAddr,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
