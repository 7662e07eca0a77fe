package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// EnvExporter writes a structured secret document as a dotenv file.
type EnvExporter interface {
	// Export decodes a JSON object from r and writes its pairs to output.
	// It returns the number of variables written.
	Export(r io.Reader, output m.Path) (int, error)
}

type envExporter struct {
	store adapter.EnvStore
}

// NewEnvExporter creates an EnvExporter persisting through store.
func NewEnvExporter(store adapter.EnvStore) EnvExporter {
	return &envExporter{store: store}
}

func (e *envExporter) Export(r io.Reader, output m.Path) (int, error) {
	values, err := DecodeSecret(r)
	if err != nil {
		return 0, err
	}

	if err := e.store.SaveEnv(output, values); err != nil {
		return 0, err
	}

	return len(values), nil
}

// DecodeSecret reads a flat JSON object. Strings are kept verbatim, numbers
// and booleans use their JSON text; nested values and null are rejected.
func DecodeSecret(r io.Reader) (map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode secret document: %w", err)
	}

	if raw == nil {
		return nil, fmt.Errorf("secret document is empty")
	}

	values := make(map[string]string, len(raw))

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = v
		case json.Number:
			values[key] = v.String()
		case bool:
			values[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("secret %q: unsupported value type %T", key, value)
		}
	}

	return values, nil
}
