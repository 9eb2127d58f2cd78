package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{config.EnvUpstreamHost, config.EnvUsername, config.EnvPassword, config.EnvPort} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadToml(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(`
[upstream]
host = "http://10.0.0.1"
username = "monitor"
password = "${IFGRAPH_TEST_PASS}"

[inventory.interfaces."ether1"]
description = "uplink"
type = "ethernetCsmacd"
type_code = 6
`, "toml", false)

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.1", cfg.Upstream.Host)
	assert.Equal(t, "${IFGRAPH_TEST_PASS}", cfg.Upstream.Password)
	assert.Equal(t, config.DefaultGraphsPath, cfg.Upstream.GraphsPath)
	assert.Equal(t, config.DefaultApiBind, cfg.Api.Bind)
	assert.Equal(t, 6, cfg.Inventory.Interfaces["ether1"].TypeCode)
}

func TestLoadSubstitutesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("IFGRAPH_TEST_PASS", "s3cret")

	cfg, err := Load("[upstream]\npassword = \"${IFGRAPH_TEST_PASS}\"\n", "toml", true)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Upstream.Password)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvUpstreamHost, "http://172.16.0.1")
	t.Setenv(config.EnvPort, "8080")

	cfg, err := Load(`{"upstream": {"host": "http://10.0.0.1"}}`, "json", false)

	require.NoError(t, err)
	assert.Equal(t, "http://172.16.0.1", cfg.Upstream.Host)
	assert.Equal(t, ":8080", cfg.Api.Bind)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load("[upstrem]\nhost = \"x\"\n", "toml", false)
	assert.Error(t, err)

	_, err = Load("[inventory]\nkind = \"snmp\"\n", "toml", false)
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ether1.html")
	page := `<html><body><h3>"Monthly" Graph (2 Hour Average)</h3>
Max In: 90Mb; Average In: 30Mb; Current In: 12Mb;
Max Out: 9Mb; Average Out: 3Mb; Current Out: 1Mb;</body></html>`
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))

	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetArgs([]string{"parse", "--iface", "ether1", path})
	defer RootCmd.SetArgs(nil)

	require.NoError(t, RootCmd.Execute())

	var result graph.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))

	assert.Equal(t, "ether1", result.Interface)
	assert.Nil(t, result.Daily)
	require.NotNil(t, result.Monthly)
	assert.Equal(t, &graph.StatTriple{Max: "90Mb", Average: "30Mb", Current: "12Mb"}, result.Monthly.In)
	assert.True(t, strings.HasSuffix(out.String(), "}\n"))
}
