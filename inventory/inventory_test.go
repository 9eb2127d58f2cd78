package inventory

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ifgraph/ifgraph/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticConfig() config.InventoryConfig {
	return config.InventoryConfig{
		Kind: "static",
		Interfaces: map[string]config.InterfaceConfig{
			"bridge-LAN": {
				Description: "network local",
				Type:        "bridge",
				TypeCode:    7,
				MaxSpeed:    "1G",
				Address:     "192.168.20.1",
			},
			"ether2-to-ISP": {
				Description: "upstream 100Mbps",
				Type:        "ethernetCsmacd",
				TypeCode:    6,
				MaxSpeed:    "1G",
			},
		},
	}
}

func TestEntry(t *testing.T) {
	i := Interface{Name: "vlan30", Description: "users", Type: "l2vlan", TypeCode: 135, MaxSpeed: "1G"}

	assert.Equal(t, Entry{
		Description: "users",
		IfType:      "l2vlan (135)",
		MaxSpeed:    "1G",
		IP:          "none",
	}, i.Entry())

	i.TypeCode = 0
	i.Address = "10.40.0.1"
	assert.Equal(t, "l2vlan", i.Entry().IfType)
	assert.Equal(t, "10.40.0.1", i.Entry().IP)
}

func TestStaticInventory(t *testing.T) {
	inv, err := New(staticConfig(), config.SystemConfig{Name: "NMS", Maintainer: "noc@example.org"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bridge-LAN", "ether2-to-ISP"}, inv.Names())

	i, ok := inv.Get("bridge-LAN")
	require.True(t, ok)
	assert.Equal(t, "bridge-LAN", i.Name)

	_, ok = inv.Get("ether9")
	assert.False(t, ok)

	all := inv.All()
	delete(all, "bridge-LAN")
	_, ok = inv.Get("bridge-LAN")
	assert.True(t, ok)

	entries := inv.Entries()
	assert.Equal(t, "bridge (7)", entries["bridge-LAN"].IfType)
	assert.Equal(t, "none", entries["ether2-to-ISP"].IP)

	assert.Equal(t, SystemInfo{System: "NMS", Maintainer: "noc@example.org"}, inv.System())
}

func TestModule(t *testing.T) {
	inv, err := New(staticConfig(), config.SystemConfig{Name: "NMS"})
	require.NoError(t, err)

	module, err := inv.Module()
	require.NoError(t, err)

	text := string(module)
	assert.Contains(t, text, "export const SYSTEM_INFO = {\n  \"system\": \"NMS\",")
	assert.Contains(t, text, "export const INTERFACES = {\n  \"bridge-LAN\": {")
	assert.Contains(t, text, `"ifType": "ethernetCsmacd (6)"`)
}

func TestUnsupportedKind(t *testing.T) {
	_, err := New(config.InventoryConfig{Kind: "snmp"}, config.SystemConfig{})
	assert.Error(t, err)
}

func TestJsonInventory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"ifname": "ether1", "description": "uplink", "type": "ethernetCsmacd", "type_code": 6, "max_speed": "1G", "address": "10.0.0.2"},
			{"ifname": "wlan1"}
		]`))
	}))
	defer srv.Close()

	inv, err := New(config.InventoryConfig{
		Kind:            "json",
		JsonEndpoint:    srv.URL,
		JsonNamePattern: "ifname",
	}, config.SystemConfig{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ether1", "wlan1"}, inv.Names())

	ether1, _ := inv.Get("ether1")
	assert.Equal(t, Interface{
		Name:        "ether1",
		Description: "uplink",
		Type:        "ethernetCsmacd",
		TypeCode:    6,
		MaxSpeed:    "1G",
		Address:     "10.0.0.2",
	}, ether1)

	wlan1, _ := inv.Get("wlan1")
	assert.Equal(t, Interface{Name: "wlan1"}, wlan1)
}

func TestJsonInventoryErrors(t *testing.T) {
	cfg := withJsonDefaults(config.InventoryConfig{})

	_, err := parseJson(`{"name": "not an array"}`, cfg)
	assert.Error(t, err)

	_, err = parseJson(`[{"description": "no name"}]`, cfg)
	assert.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err = New(config.InventoryConfig{Kind: "json", JsonEndpoint: srv.URL}, config.SystemConfig{})
	assert.Error(t, err)
}
