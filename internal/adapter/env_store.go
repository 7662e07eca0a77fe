package adapter

import (
	"fmt"

	"github.com/joho/godotenv"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

// envFilePerm keeps secrets readable by the owner only.
const envFilePerm = 0o600

// EnvStore persists and retrieves dotenv files.
type EnvStore interface {
	SaveEnv(path m.Path, values map[string]string) error
	LoadEnv(path m.Path) (map[string]string, error)
}

type envStore struct {
	fs SourceFSAdapter
}

// NewEnvStore constructs an EnvStore that writes through fs.
func NewEnvStore(fs SourceFSAdapter) EnvStore {
	return &envStore{fs: fs}
}

// SaveEnv serialises values as KEY="value" lines sorted by key and replaces
// the file at path with mode 0600.
func (es *envStore) SaveEnv(path m.Path, values map[string]string) error {
	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode env file: %w", err)
	}

	if err := es.fs.WriteFile(path, []byte(content), envFilePerm); err != nil {
		return fmt.Errorf("failed to write env file %s: %w", path, err)
	}

	return nil
}

func (es *envStore) LoadEnv(path m.Path) (map[string]string, error) {
	content, err := es.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	values, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file %s: %w", path, err)
	}

	return values, nil
}
