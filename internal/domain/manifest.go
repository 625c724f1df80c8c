package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ManifestFileName is the project manifest crucible looks for in the
// directory it runs from.
const ManifestFileName = "crucible.toml"

// Severity is a lint rule severity. The set is closed: the table is consumed
// by external tooling, crucible only validates and renders it.
type Severity string

const (
	SeverityAllow Severity = "allow"
	SeverityWarn  Severity = "warn"
	SeverityDeny  Severity = "deny"
)

// ValidSeverities enumerates all recognized lint severities.
var ValidSeverities = []Severity{SeverityAllow, SeverityWarn, SeverityDeny}

// PackageInfo declares the project's identity. The generated template leaves
// most fields as placeholders for the project that grows out of the scaffold.
type PackageInfo struct {
	Name        string   `toml:"name"        json:"name"`
	Version     string   `toml:"version"     json:"version"`
	Authors     []string `toml:"authors"     json:"authors,omitempty"`
	Description string   `toml:"description" json:"description,omitempty"`
	License     string   `toml:"license"     json:"license,omitempty"`
	Repository  string   `toml:"repository"  json:"repository,omitempty"`
}

// ToolchainInfo pins the toolchain channels the test matrix exercises.
type ToolchainInfo struct {
	// MSRV is the minimum supported Go version the project commits to,
	// e.g. "1.24.0".
	MSRV string `toml:"msrv" json:"msrv"`
	// Beta is the pre-release toolchain name used by the beta-channel
	// stages, e.g. "go1.25rc1". Empty means "use the local toolchain".
	Beta string `toml:"beta" json:"beta,omitempty"`
}

// Manifest is the parsed crucible.toml.
type Manifest struct {
	Package   PackageInfo         `toml:"package"   json:"package"`
	Toolchain ToolchainInfo       `toml:"toolchain" json:"toolchain"`
	Env       map[string]string   `toml:"env"       json:"env,omitempty"`
	Lint      map[string]Severity `toml:"lint"      json:"lint,omitempty"`
}

// Validate checks the closed-set fields. It does not judge package metadata:
// placeholder values are legal, the scaffold ships with them.
func (m *Manifest) Validate() error {
	if m.Toolchain.MSRV != "" {
		if _, err := semver.NewVersion(m.Toolchain.MSRV); err != nil {
			return fmt.Errorf("toolchain.msrv %q: %w", m.Toolchain.MSRV, err)
		}
	}
	if m.Toolchain.Beta != "" && !strings.HasPrefix(m.Toolchain.Beta, "go") {
		return fmt.Errorf("toolchain.beta %q: expected a toolchain name like \"go1.25rc1\"", m.Toolchain.Beta)
	}
	for rule, sev := range m.Lint {
		switch sev {
		case SeverityAllow, SeverityWarn, SeverityDeny:
		default:
			return fmt.Errorf("lint.%s: unknown severity %q (valid: allow, warn, deny)", rule, sev)
		}
	}
	return nil
}

// MSRV returns the parsed minimum supported version, or nil when unset.
// Validate guarantees the field parses when present.
func (m *Manifest) MSRV() *semver.Version {
	if m.Toolchain.MSRV == "" {
		return nil
	}
	v, err := semver.NewVersion(m.Toolchain.MSRV)
	if err != nil {
		return nil
	}
	return v
}

// DefaultManifest returns the manifest the scaffold generator starts from.
func DefaultManifest() *Manifest {
	return &Manifest{
		Package: PackageInfo{
			Name:    "TODO: update package name",
			Version: "0.1.0",
		},
		Toolchain: ToolchainInfo{
			MSRV: "1.24.0",
			Beta: "go1.25rc1",
		},
		Env: map[string]string{
			"GOFLAGS": "-mod=readonly",
		},
		Lint: DefaultLintPolicy(),
	}
}

// DefaultLintPolicy is the rule-severity table written into new manifests.
func DefaultLintPolicy() map[string]Severity {
	return map[string]Severity{
		"errcheck":    SeverityDeny,
		"govet":       SeverityDeny,
		"staticcheck": SeverityDeny,
		"ineffassign": SeverityDeny,
		"unused":      SeverityDeny,
		"misspell":    SeverityWarn,
		"revive":      SeverityWarn,
		"gocyclo":     SeverityAllow,
		"dupl":        SeverityAllow,
	}
}
