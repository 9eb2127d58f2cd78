package profiler

/**
 * profiler.go - pprof listener
 */

import (
	"net/http"
	"net/http/pprof"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/logging"
)

/**
 * Start serves /debug/pprof on its own listener, away from the api
 */
func Start(cfg config.ProfilerConfig) {

	log := logging.For("profiler")

	if !cfg.Enabled {
		return
	}

	log.Infof("Starting profiler: %v", cfg.Bind)

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	go func() {
		log.Error(http.ListenAndServe(cfg.Bind, mux))
	}()
}
