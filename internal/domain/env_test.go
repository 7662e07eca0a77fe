package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

func TestDecodeSecret(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr string
	}{
		{
			name:  "scalars",
			input: `{"API_URL":"https://api.example.com","PORT":8080,"RATIO":0.25,"DEBUG":true}`,
			want: map[string]string{
				"API_URL": "https://api.example.com",
				"PORT":    "8080",
				"RATIO":   "0.25",
				"DEBUG":   "true",
			},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  map[string]string{},
		},
		{
			name:    "nested object",
			input:   `{"DB":{"host":"localhost"}}`,
			wantErr: `secret "DB": unsupported value type`,
		},
		{
			name:    "null value",
			input:   `{"TOKEN":null}`,
			wantErr: `secret "TOKEN": unsupported value type`,
		},
		{
			name:    "null document",
			input:   `null`,
			wantErr: "secret document is empty",
		},
		{
			name:    "not json",
			input:   `API_URL=https://api.example.com`,
			wantErr: "failed to decode secret document",
		},
		{
			name:    "array document",
			input:   `["a","b"]`,
			wantErr: "failed to decode secret document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSecret(strings.NewReader(tt.input))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvExporter_Export(t *testing.T) {
	fs := adapter.NewLocalSourceFSAdapter()
	store := adapter.NewEnvStore(fs)
	output := filepath.Join(t.TempDir(), ".env.local")

	count, err := NewEnvExporter(store).Export(strings.NewReader(`{"B_KEY":"two words","A_KEY":"1"}`), m.Path(output))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, "A_KEY=1\nB_KEY=\"two words\"", readTestFile(t, output))

	values, err := store.LoadEnv(m.Path(output))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A_KEY": "1", "B_KEY": "two words"}, values)
}

func TestEnvExporter_ExportInvalidDocument(t *testing.T) {
	output := filepath.Join(t.TempDir(), ".env.local")

	count, err := NewEnvExporter(adapter.NewEnvStore(adapter.NewLocalSourceFSAdapter())).Export(strings.NewReader(`{"A":[1]}`), m.Path(output))
	require.Error(t, err)
	assert.Zero(t, count)
	assert.NoFileExists(t, output)
}
