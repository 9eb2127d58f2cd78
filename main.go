package main

/**
 * main.go - entry point
 */

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ifgraph/ifgraph/cmd"
	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/info"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/ifgraph/ifgraph/manager"
)

/**
 * Initialize package
 */
func init() {
	gin.SetMode(gin.ReleaseMode)
}

/**
 * Entry point
 */
func main() {

	cmd.Execute(func(cfg *config.Config) {

		if err := logging.Configure(cfg.Logging.Output, cfg.Logging.Level); err != nil {
			logging.For("main").Fatal(err)
		}

		log := logging.For("main")
		log.Info("ifgraph v", info.Version)

		m, err := manager.New(*cfg)
		if err != nil {
			log.Fatal(err)
		}

		go func() {
			if err := m.Start(); err != nil {
				log.Fatal(err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		if err := m.Stop(); err != nil {
			log.Error(err)
		}

		log.Info("Bye")
	})
}
