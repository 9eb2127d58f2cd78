package inventory

/**
 * inventory.go - interface metadata for dashboard labels
 */

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/logging"
)

/**
 * Interface describes a router interface. Pure static data,
 * never taken from the device itself.
 */
type Interface struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	TypeCode    int    `json:"typeCode"`
	MaxSpeed    string `json:"maxSpeed"`
	Address     string `json:"address"`
}

/**
 * Entry is the dashboard view of an interface
 */
type Entry struct {
	Description string `json:"description"`
	IfType      string `json:"ifType"`
	MaxSpeed    string `json:"maxSpeed"`
	IP          string `json:"ip"`
}

/**
 * Entry renders type with its numeric code and "none" for missing address
 */
func (i Interface) Entry() Entry {

	ifType := i.Type
	if i.TypeCode > 0 {
		ifType = fmt.Sprintf("%s (%d)", i.Type, i.TypeCode)
	}

	address := i.Address
	if address == "" {
		address = "none"
	}

	return Entry{
		Description: i.Description,
		IfType:      ifType,
		MaxSpeed:    i.MaxSpeed,
		IP:          address,
	}
}

/**
 * System identification shown next to interfaces
 */
type SystemInfo struct {
	System     string `json:"system"`
	Maintainer string `json:"maintainer"`
}

/**
 * Fetch func for loading interfaces
 */
type FetchFunc func(config.InventoryConfig) (map[string]Interface, error)

/**
 * Registry of fetch funcs by inventory kind
 */
var registry = make(map[string]FetchFunc)

func init() {
	registry["static"] = staticFetch
	registry["json"] = jsonFetch
}

/**
 * Inventory holds loaded interfaces. Read-only once created.
 */
type Inventory struct {
	system     SystemInfo
	interfaces map[string]Interface
}

/**
 * New loads interfaces according to cfg
 */
func New(cfg config.InventoryConfig, system config.SystemConfig) (*Inventory, error) {

	log := logging.For("inventory")

	fetch, ok := registry[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("inventory: not supported kind %q", cfg.Kind)
	}

	interfaces, err := fetch(cfg)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}

	log.Infof("Loaded %d interfaces (%s)", len(interfaces), cfg.Kind)

	return &Inventory{
		system: SystemInfo{
			System:     system.Name,
			Maintainer: system.Maintainer,
		},
		interfaces: interfaces,
	}, nil
}

/**
 * Get interface by name
 */
func (inv *Inventory) Get(name string) (Interface, bool) {
	i, ok := inv.interfaces[name]
	return i, ok
}

/**
 * Names of all interfaces, sorted
 */
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.interfaces))
	for name := range inv.interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/**
 * All returns a copy of loaded interfaces
 */
func (inv *Inventory) All() map[string]Interface {
	all := make(map[string]Interface, len(inv.interfaces))
	for name, i := range inv.interfaces {
		all[name] = i
	}
	return all
}

/**
 * Entries renders all interfaces for the dashboard
 */
func (inv *Inventory) Entries() map[string]Entry {
	entries := make(map[string]Entry, len(inv.interfaces))
	for name, i := range inv.interfaces {
		entries[name] = i.Entry()
	}
	return entries
}

/**
 * System info
 */
func (inv *Inventory) System() SystemInfo {
	return inv.system
}

/**
 * Module renders system info and entries as an ES module
 * the dashboard imports
 */
func (inv *Inventory) Module() ([]byte, error) {

	system, err := json.MarshalIndent(inv.system, "", "  ")
	if err != nil {
		return nil, err
	}

	entries, err := json.MarshalIndent(inv.Entries(), "", "  ")
	if err != nil {
		return nil, err
	}

	b := &bytes.Buffer{}
	fmt.Fprintf(b, "export const SYSTEM_INFO = %s;\n\n", system)
	fmt.Fprintf(b, "export const INTERFACES = %s;\n", entries)

	return b.Bytes(), nil
}
