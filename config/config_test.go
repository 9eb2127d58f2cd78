package config

import (
	"os"
	"testing"

	"github.com/ifgraph/ifgraph/utils/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultApiBind, cfg.Api.Bind)
	assert.Equal(t, DefaultStaticDir, cfg.Api.StaticDir)
	assert.Equal(t, DefaultUpstreamHost, cfg.Upstream.Host)
	assert.Equal(t, DefaultGraphsPath, cfg.Upstream.GraphsPath)
	assert.Equal(t, DefaultInventoryKind, cfg.Inventory.Kind)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Nil(t, cfg.Api.Tls)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsKeepSetValues(t *testing.T) {
	cfg := Config{
		Api:      ApiConfig{Bind: ":8080", Tls: &ApiTlsConfig{AcmeHosts: []string{"example.com"}}},
		Upstream: UpstreamConfig{Host: "https://10.0.0.1"},
	}
	cfg.SetDefaults()

	assert.Equal(t, ":8080", cfg.Api.Bind)
	assert.Equal(t, "https://10.0.0.1", cfg.Upstream.Host)
	assert.Equal(t, DefaultAcmeCacheDir, cfg.Api.Tls.AcmeCacheDir)
	assert.Equal(t, DefaultAcmeHttpBind, cfg.Api.Tls.AcmeHttpBind)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.Upstream.Username = "fromfile"

	cfg.applyEnv(lookupFrom(map[string]string{
		EnvUpstreamHost: "http://172.16.0.1",
		EnvUsername:     "monitor",
		EnvPassword:     "pw",
		EnvPort:         "8081",
	}))

	assert.Equal(t, "http://172.16.0.1", cfg.Upstream.Host)
	assert.Equal(t, "monitor", cfg.Upstream.Username)
	assert.Equal(t, "pw", cfg.Upstream.Password)
	assert.Equal(t, ":8081", cfg.Api.Bind)
}

func TestApplyEnvEmpty(t *testing.T) {
	cfg := Default()
	cfg.Upstream.Username = "fromfile"

	cfg.applyEnv(lookupFrom(map[string]string{
		EnvUpstreamHost: "",
		EnvPort:         "",
	}))

	assert.Equal(t, DefaultUpstreamHost, cfg.Upstream.Host)
	assert.Equal(t, DefaultApiBind, cfg.Api.Bind)
	assert.Equal(t, "fromfile", cfg.Upstream.Username)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"unknown kind", func(c *Config) { c.Inventory.Kind = "snmp" }, false},
		{"json without endpoint", func(c *Config) { c.Inventory.Kind = "json" }, false},
		{"json", func(c *Config) {
			c.Inventory.Kind = "json"
			c.Inventory.JsonEndpoint = "http://inventory/ifaces"
		}, true},
		{"bad timeout", func(c *Config) { c.Inventory.Timeout = "soon" }, false},
		{"cert without key", func(c *Config) { c.Api.Tls = &ApiTlsConfig{CertPath: "c.pem"} }, false},
		{"cert and acme", func(c *Config) {
			c.Api.Tls = &ApiTlsConfig{CertPath: "c.pem", KeyPath: "k.pem", AcmeHosts: []string{"a"}}
		}, false},
		{"empty tls", func(c *Config) { c.Api.Tls = &ApiTlsConfig{} }, false},
		{"cert pair", func(c *Config) { c.Api.Tls = &ApiTlsConfig{CertPath: "c.pem", KeyPath: "k.pem"} }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if tc.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestMasked(t *testing.T) {
	cfg := Default()
	cfg.Upstream.Password = "secret"
	cfg.Api.BasicAuth = &ApiBasicAuth{Login: "admin", Password: "hunter2"}

	masked := cfg.Masked()

	assert.Equal(t, "******", masked.Upstream.Password)
	assert.Equal(t, "******", masked.Api.BasicAuth.Password)
	assert.Equal(t, "admin", masked.Api.BasicAuth.Login)

	assert.Equal(t, "secret", cfg.Upstream.Password)
	assert.Equal(t, "hunter2", cfg.Api.BasicAuth.Password)
}

func TestSampleConfig(t *testing.T) {
	data, err := os.ReadFile("ifgraph.toml")
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, codec.Decode(string(data), &cfg, codec.Toml))
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://192.168.20.1", cfg.Upstream.Host)
	assert.Equal(t, "NMS in TFK HOME-YGK", cfg.System.Name)
	require.Len(t, cfg.Inventory.Interfaces, 7)

	lan := cfg.Inventory.Interfaces["bridge-LAN"]
	assert.Equal(t, "bridge", lan.Type)
	assert.Equal(t, 7, lan.TypeCode)
	assert.Equal(t, "192.168.20.1 (No DNS name)", lan.Address)
}
