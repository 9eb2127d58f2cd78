package config

/**
 * config.go - config file definitions
 */

import (
	"fmt"
	"os"
	"time"
)

/**
 * Config file top-level object
 */
type Config struct {
	Logging   LoggingConfig   `toml:"logging" json:"logging"`
	Api       ApiConfig       `toml:"api" json:"api"`
	Metrics   MetricsConfig   `toml:"metrics" json:"metrics"`
	Profiler  ProfilerConfig  `toml:"profiler" json:"profiler"`
	Upstream  UpstreamConfig  `toml:"upstream" json:"upstream"`
	System    SystemConfig    `toml:"system" json:"system"`
	Inventory InventoryConfig `toml:"inventory" json:"inventory"`
}

/**
 * Logging config section
 */
type LoggingConfig struct {
	Level  string `toml:"level" json:"level"`
	Output string `toml:"output" json:"output"`
}

/**
 * Api config section
 */
type ApiConfig struct {
	Bind          string        `toml:"bind" json:"bind"`
	Cors          bool          `toml:"cors" json:"cors"`
	StaticDir     string        `toml:"static_dir" json:"static_dir"`
	ProxyProtocol bool          `toml:"proxy_protocol" json:"proxy_protocol"`
	BasicAuth     *ApiBasicAuth `toml:"basic_auth" json:"basic_auth"`
	Tls           *ApiTlsConfig `toml:"tls" json:"tls"`
}

/**
 * Api Basic Auth Config
 */
type ApiBasicAuth struct {
	Login    string `toml:"login" json:"login"`
	Password string `toml:"password" json:"password"`
}

/**
 * Api TLS config. Either a cert/key pair or acme hosts.
 */
type ApiTlsConfig struct {
	CertPath     string   `toml:"cert_path" json:"cert_path"`
	KeyPath      string   `toml:"key_path" json:"key_path"`
	AcmeHosts    []string `toml:"acme_hosts" json:"acme_hosts"`
	AcmeCacheDir string   `toml:"acme_cache_dir" json:"acme_cache_dir"`
	AcmeHttpBind string   `toml:"acme_http_bind" json:"acme_http_bind"`
}

/**
 * Prometheus metrics listener
 */
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Bind    string `toml:"bind" json:"bind"`
}

/**
 * pprof listener
 */
type ProfilerConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Bind    string `toml:"bind" json:"bind"`
}

/**
 * Router the graphs are pulled from
 */
type UpstreamConfig struct {
	// scheme://host[:port] of the device
	Host string `toml:"host" json:"host"`

	// prefix of per-interface graph pages
	GraphsPath string `toml:"graphs_path" json:"graphs_path"`

	// basic credentials, header is sent only if both are set
	Username string `toml:"username" json:"username"`
	Password string `toml:"password" json:"password"`
}

/**
 * System identification shown by the dashboard
 */
type SystemConfig struct {
	Name       string `toml:"name" json:"name"`
	Maintainer string `toml:"maintainer" json:"maintainer"`
}

/**
 * Interface metadata source
 */
type InventoryConfig struct {
	// static | json
	Kind string `toml:"kind" json:"kind"`

	/* only if kind = "static" */
	Interfaces map[string]InterfaceConfig `toml:"interfaces" json:"interfaces"`

	/* only if kind = "json" */
	JsonEndpoint           string `toml:"json_endpoint" json:"json_endpoint"`
	JsonNamePattern        string `toml:"json_name_pattern" json:"json_name_pattern"`
	JsonDescriptionPattern string `toml:"json_description_pattern" json:"json_description_pattern"`
	JsonTypePattern        string `toml:"json_type_pattern" json:"json_type_pattern"`
	JsonTypeCodePattern    string `toml:"json_type_code_pattern" json:"json_type_code_pattern"`
	JsonMaxSpeedPattern    string `toml:"json_max_speed_pattern" json:"json_max_speed_pattern"`
	JsonAddressPattern     string `toml:"json_address_pattern" json:"json_address_pattern"`
	Timeout                string `toml:"timeout" json:"timeout"`
}

/**
 * Static interface description
 */
type InterfaceConfig struct {
	Description string `toml:"description" json:"description"`
	Type        string `toml:"type" json:"type"`
	TypeCode    int    `toml:"type_code" json:"type_code"`
	MaxSpeed    string `toml:"max_speed" json:"max_speed"`
	Address     string `toml:"address" json:"address"`
}

/* ----- Defaults ----- */

const (
	DefaultApiBind       = ":3000"
	DefaultStaticDir     = "./public"
	DefaultMetricsBind   = ":9284"
	DefaultProfilerBind  = ":6060"
	DefaultUpstreamHost  = "http://192.168.20.1"
	DefaultGraphsPath    = "/graphs/iface"
	DefaultInventoryKind = "static"
	DefaultAcmeCacheDir  = "/tmp"
	DefaultAcmeHttpBind  = ":80"
)

/**
 * Default returns config used when nothing is configured
 */
func Default() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

/**
 * SetDefaults fills empty values with defaults
 */
func (c *Config) SetDefaults() {

	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Api.Bind == "" {
		c.Api.Bind = DefaultApiBind
	}

	if c.Api.StaticDir == "" {
		c.Api.StaticDir = DefaultStaticDir
	}

	if c.Api.Tls != nil {
		if c.Api.Tls.AcmeCacheDir == "" {
			c.Api.Tls.AcmeCacheDir = DefaultAcmeCacheDir
		}
		if c.Api.Tls.AcmeHttpBind == "" {
			c.Api.Tls.AcmeHttpBind = DefaultAcmeHttpBind
		}
	}

	if c.Metrics.Bind == "" {
		c.Metrics.Bind = DefaultMetricsBind
	}

	if c.Profiler.Bind == "" {
		c.Profiler.Bind = DefaultProfilerBind
	}

	if c.Upstream.Host == "" {
		c.Upstream.Host = DefaultUpstreamHost
	}

	if c.Upstream.GraphsPath == "" {
		c.Upstream.GraphsPath = DefaultGraphsPath
	}

	if c.Inventory.Kind == "" {
		c.Inventory.Kind = DefaultInventoryKind
	}
}

/**
 * Environment variables overriding config values
 */
const (
	EnvUpstreamHost = "MIKROTIK_HOST"
	EnvUsername     = "MT_USER"
	EnvPassword     = "MT_PASS"
	EnvPort         = "PORT"
)

/**
 * ApplyEnv overrides config with environment variables that are set
 */
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {

	if v, ok := lookup(EnvUpstreamHost); ok && v != "" {
		c.Upstream.Host = v
	}

	if v, ok := lookup(EnvUsername); ok {
		c.Upstream.Username = v
	}

	if v, ok := lookup(EnvPassword); ok {
		c.Upstream.Password = v
	}

	if v, ok := lookup(EnvPort); ok && v != "" {
		c.Api.Bind = ":" + v
	}
}

/**
 * Validate checks values that can not be defaulted
 */
func (c *Config) Validate() error {

	switch c.Inventory.Kind {
	case "static":
	case "json":
		if c.Inventory.JsonEndpoint == "" {
			return fmt.Errorf("inventory: json_endpoint is required for kind json")
		}
	default:
		return fmt.Errorf("inventory: not supported kind %q", c.Inventory.Kind)
	}

	if c.Inventory.Timeout != "" {
		if _, err := time.ParseDuration(c.Inventory.Timeout); err != nil {
			return fmt.Errorf("inventory: bad timeout: %w", err)
		}
	}

	if t := c.Api.Tls; t != nil {
		hasPair := t.CertPath != "" || t.KeyPath != ""
		if hasPair && (t.CertPath == "" || t.KeyPath == "") {
			return fmt.Errorf("api.tls: both cert_path and key_path are required")
		}
		if hasPair && len(t.AcmeHosts) > 0 {
			return fmt.Errorf("api.tls: cert_path and acme_hosts are mutually exclusive")
		}
		if !hasPair && len(t.AcmeHosts) == 0 {
			return fmt.Errorf("api.tls: either cert_path/key_path or acme_hosts should be set")
		}
	}

	return nil
}

/**
 * Masked returns a copy safe to expose through the api
 */
func (c Config) Masked() Config {

	if c.Upstream.Password != "" {
		c.Upstream.Password = "******"
	}

	if c.Api.BasicAuth != nil {
		auth := *c.Api.BasicAuth
		if auth.Password != "" {
			auth.Password = "******"
		}
		c.Api.BasicAuth = &auth
	}

	return c
}
