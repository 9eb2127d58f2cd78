package info

/**
 * info.go - runtime and build info
 */

import (
	"time"
)

/**
 * Version, Revision and Branch are set while build, e.g.
 * -ldflags "-X github.com/ifgraph/ifgraph/info.Version=0.1.0"
 */
var (
	Version  = "dev"
	Revision = ""
	Branch   = ""
)

/**
 * Time when process was started
 */
var StartTime = time.Now()

/**
 * Where configuration was loaded from, exposed by the api
 */
var Configuration interface{}
