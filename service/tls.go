package service

/**
 * tls.go - api listener tls configuration
 */

import (
	"crypto/tls"
	"fmt"

	"github.com/ifgraph/ifgraph/config"
)

/**
 * TlsConfig builds tls config for the api listener, either from a
 * cert/key pair or backed by acme. Returns nil if tls is not configured.
 */
func TlsConfig(cfg *config.ApiTlsConfig) (*tls.Config, error) {

	if cfg == nil {
		return nil, nil
	}

	if acme := NewAcmeService(*cfg); acme != nil {
		acme.Start()
		return &tls.Config{
			GetCertificate: acme.GetCertificate,
			NextProtos:     []string{"h2", "http/1.1"},
		}, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("loading tls key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
