package inventory

/**
 * static.go - interfaces listed in config
 */

import (
	"github.com/ifgraph/ifgraph/config"
)

func staticFetch(cfg config.InventoryConfig) (map[string]Interface, error) {

	interfaces := make(map[string]Interface, len(cfg.Interfaces))

	for name, i := range cfg.Interfaces {
		interfaces[name] = Interface{
			Name:        name,
			Description: i.Description,
			Type:        i.Type,
			TypeCode:    i.TypeCode,
			MaxSpeed:    i.MaxSpeed,
			Address:     i.Address,
		}
	}

	return interfaces, nil
}
