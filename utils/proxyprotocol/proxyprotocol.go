package proxyprotocol

/**
 * proxyprotocol.go - PROXY protocol aware listener
 */

import (
	"net"
	"time"

	proxyproto "github.com/pires/go-proxyproto"
)

/* how long to wait for a header before giving up on a connection */
const headerTimeout = 5 * time.Second

/**
 * Wrap makes ln read a PROXY protocol v1/v2 header from each accepted
 * connection, so RemoteAddr reports the real client. Connections
 * without a header are passed through unchanged.
 */
func Wrap(ln net.Listener) net.Listener {
	return &proxyproto.Listener{
		Listener:          ln,
		ReadHeaderTimeout: headerTimeout,
	}
}

/**
 * Listen on tcp bind address, optionally expecting PROXY protocol headers
 */
func Listen(bind string, enabled bool) (net.Listener, error) {

	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return nil, err
	}

	if !enabled {
		return ln, nil
	}

	return Wrap(ln), nil
}
