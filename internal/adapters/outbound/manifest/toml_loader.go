package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/crucible-ci/crucible/internal/domain"
)

// Loader implements domain.ManifestLoader by reading crucible.toml.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

// Load reads and validates crucible.toml from projectPath. A missing file is
// an environment failure (the tool was run outside a project root), reported
// distinctly from a malformed one.
func (l *Loader) Load(projectPath string) (*domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, domain.ManifestFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.Externalf(0, "%s not found: run crucible from the project root (or crucible init to create one)", domain.ManifestFileName)
		}
		return nil, fmt.Errorf("reading %s: %w", domain.ManifestFileName, err)
	}

	// A broken manifest is the user's input, not a crucible bug: both parse
	// and validation failures are external-class.
	var m domain.Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, domain.Externalf(0, "parsing %s: %v", domain.ManifestFileName, err)
	}

	if err := m.Validate(); err != nil {
		return nil, domain.Externalf(0, "invalid %s: %v", domain.ManifestFileName, err)
	}

	return &m, nil
}
