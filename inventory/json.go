package inventory

/**
 * json.go - interfaces pulled from a json endpoint
 */

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/elgs/gojq"
	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/ifgraph/ifgraph/utils"
)

const (
	jsonDefaultHttpTimeout        = 5 * time.Second
	jsonDefaultNamePattern        = "name"
	jsonDefaultDescriptionPattern = "description"
	jsonDefaultTypePattern        = "type"
	jsonDefaultTypeCodePattern    = "type_code"
	jsonDefaultMaxSpeedPattern    = "max_speed"
	jsonDefaultAddressPattern     = "address"
)

func withJsonDefaults(cfg config.InventoryConfig) config.InventoryConfig {

	if cfg.JsonNamePattern == "" {
		cfg.JsonNamePattern = jsonDefaultNamePattern
	}

	if cfg.JsonDescriptionPattern == "" {
		cfg.JsonDescriptionPattern = jsonDefaultDescriptionPattern
	}

	if cfg.JsonTypePattern == "" {
		cfg.JsonTypePattern = jsonDefaultTypePattern
	}

	if cfg.JsonTypeCodePattern == "" {
		cfg.JsonTypeCodePattern = jsonDefaultTypeCodePattern
	}

	if cfg.JsonMaxSpeedPattern == "" {
		cfg.JsonMaxSpeedPattern = jsonDefaultMaxSpeedPattern
	}

	if cfg.JsonAddressPattern == "" {
		cfg.JsonAddressPattern = jsonDefaultAddressPattern
	}

	return cfg
}

/**
 * Fetch interfaces from url returning json array of objects
 */
func jsonFetch(cfg config.InventoryConfig) (map[string]Interface, error) {

	log := logging.For("inventory/json")

	cfg = withJsonDefaults(cfg)

	log.Info("Fetching ", cfg.JsonEndpoint)

	timeout := utils.ParseDurationOrDefault(cfg.Timeout, jsonDefaultHttpTimeout)
	client := http.Client{Timeout: timeout}
	res, err := client.Get(cfg.JsonEndpoint)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from %s", res.Status, cfg.JsonEndpoint)
	}

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return parseJson(string(content), cfg)
}

func parseJson(content string, cfg config.InventoryConfig) (map[string]Interface, error) {

	parsed, err := gojq.NewStringQuery(content)
	if err != nil {
		return nil, err
	}

	// parse query to array to ensure right format and get length of it
	parsedArray, err := parsed.QueryToArray(".")
	if err != nil {
		return nil, errors.New("unexpected json in response, array expected")
	}

	interfaces := make(map[string]Interface, len(parsedArray))

	for k := range parsedArray {

		var key = "[" + strconv.Itoa(k) + "]."

		i := Interface{}

		if i.Name, err = parsed.QueryToString(key + cfg.JsonNamePattern); err != nil {
			return nil, fmt.Errorf("item %d: %w", k, err)
		}

		// optional fields
		if v, err := parsed.QueryToString(key + cfg.JsonDescriptionPattern); err == nil {
			i.Description = v
		}

		if v, err := parsed.QueryToString(key + cfg.JsonTypePattern); err == nil {
			i.Type = v
		}

		// json numbers come as float64
		if v, err := parsed.QueryToFloat64(key + cfg.JsonTypeCodePattern); err == nil {
			i.TypeCode = int(v)
		}

		if v, err := parsed.QueryToString(key + cfg.JsonMaxSpeedPattern); err == nil {
			i.MaxSpeed = v
		}

		if v, err := parsed.QueryToString(key + cfg.JsonAddressPattern); err == nil {
			i.Address = v
		}

		interfaces[i.Name] = i
	}

	return interfaces, nil
}
