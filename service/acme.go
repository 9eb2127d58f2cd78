package service

/**
 * acme.go - letsencrypt certificates for the api listener
 */

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/logging"
	"golang.org/x/crypto/acme/autocert"
)

/**
 * AcmeService obtains certificates for configured hosts and answers
 * http-01 challenges from letsencrypt.org on a plain http listener
 */
type AcmeService struct {
	certMan  *autocert.Manager
	httpBind string
	hosts    map[string]bool
	sync.RWMutex
}

/**
 * NewAcmeService returns nil if no acme hosts are configured
 */
func NewAcmeService(cfg config.ApiTlsConfig) *AcmeService {

	if len(cfg.AcmeHosts) == 0 {
		return nil
	}

	a := &AcmeService{
		certMan: &autocert.Manager{
			Cache:  autocert.DirCache(cfg.AcmeCacheDir),
			Prompt: autocert.AcceptTOS,
		},
		httpBind: cfg.AcmeHttpBind,
		hosts:    make(map[string]bool),
	}

	for _, host := range cfg.AcmeHosts {
		a.hosts[host] = true
	}

	a.certMan.HostPolicy = a.allow

	return a
}

func (a *AcmeService) allow(_ context.Context, host string) error {
	a.RLock()
	defer a.RUnlock()

	if a.hosts[host] {
		return nil
	}

	return fmt.Errorf("acme: host %s is not configured", host)
}

/**
 * Start challenge listener in background
 */
func (a *AcmeService) Start() {

	log := logging.For("acme")
	log.Info("Starting acme http challenge listener on ", a.httpBind)

	go func() {
		if err := http.ListenAndServe(a.httpBind, a.certMan.HTTPHandler(nil)); err != nil {
			log.Error(err)
		}
	}()
}

/**
 * GetCertificate is a tls.Config callback
 */
func (a *AcmeService) GetCertificate(hello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	return a.certMan.GetCertificate(hello)
}
