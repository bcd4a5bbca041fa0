// Package loader decodes network description files into station records.
//
// A network description is either a top-level list of station records or a
// mapping whose "stations" key holds that list. Documents are decoded to
// generic values first, then mapped onto core.StationSpec with unknown keys
// rejected, then structurally validated.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/netparams/pkg/core"
)

// Format identifies the encoding of a network description.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor infers the format from a file extension. Anything that is not
// .json is treated as YAML, which also accepts JSON documents.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads and decodes the network description at path.
func Load(path string) ([]core.StationSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network description: %w", err)
	}

	stations, err := decode(data, FormatFor(path))
	if err != nil {
		return nil, &core.InvalidNetworkError{Source: path, Err: err}
	}
	return stations, nil
}

// Decode reads a network description in the given format from r.
func Decode(r io.Reader, format Format) ([]core.StationSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read network description: %w", err)
	}

	stations, err := decode(data, format)
	if err != nil {
		return nil, &core.InvalidNetworkError{Err: err}
	}
	return stations, nil
}

func decode(data []byte, format Format) ([]core.StationSpec, error) {
	raw, err := unmarshalRaw(data, format)
	if err != nil {
		return nil, err
	}

	records, err := stationRecords(raw)
	if err != nil {
		return nil, err
	}

	stations := make([]core.StationSpec, 0, len(records))
	for i, rec := range records {
		var spec core.StationSpec
		if err := decodeStation(rec, &spec); err != nil {
			return nil, fmt.Errorf("station %d: %w", i+1, err)
		}
		if err := validateStation(&spec); err != nil {
			return nil, fmt.Errorf("station %d (%s): %w", i+1, spec.Name, err)
		}
		stations = append(stations, spec)
	}

	return stations, nil
}

func unmarshalRaw(data []byte, format Format) (any, error) {
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q (use yaml or json)", format)
	}
	return raw, nil
}

// stationRecords extracts the list of station records from a decoded document.
func stationRecords(raw any) ([]any, error) {
	switch doc := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		return doc, nil
	case map[string]any:
		for key := range doc {
			if key != "stations" {
				return nil, fmt.Errorf("unknown top-level key %q (expected \"stations\")", key)
			}
		}
		list, ok := doc["stations"].([]any)
		if !ok && doc["stations"] != nil {
			return nil, fmt.Errorf("\"stations\" must be a list, got %T", doc["stations"])
		}
		return list, nil
	default:
		return nil, fmt.Errorf("network description must be a list of stations, got %T", raw)
	}
}

var capacityType = reflect.TypeOf(core.Capacity{})

// capacityHook decodes integers and unbounded markers into core.Capacity.
func capacityHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != capacityType {
		return data, nil
	}
	return core.ParseCapacity(data)
}

func decodeStation(rec any, spec *core.StationSpec) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(capacityHook),
		ErrorUnused: true,
		Result:      spec,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(rec)
}
