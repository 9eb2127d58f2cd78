package codec

/**
 * codec.go - config encoding utils
 */

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

/**
 * Supported formats
 */
const (
	Toml = "toml"
	Json = "json"
)

/**
 * Encode data based on format
 */
func Encode(in interface{}, format string) (string, error) {

	switch format {
	case Toml:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(in); err != nil {
			return "", err
		}
		return buf.String(), nil
	case Json:
		buf, err := json.MarshalIndent(in, "", "    ")
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}

	return "", fmt.Errorf("unknown format %q", format)
}

/**
 * Decode data based on format. Toml keys that do not map
 * to any field are reported as an error.
 */
func Decode(data string, out interface{}, format string) error {

	switch format {
	case Toml:
		md, err := toml.Decode(data, out)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
		}
		return nil
	case Json:
		return json.Unmarshal([]byte(data), out)
	}

	return fmt.Errorf("unknown format %q", format)
}

/**
 * FormatOf guesses format from file extension, falling back to def
 */
func FormatOf(path string, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return Toml
	case ".json":
		return Json
	}
	return def
}
