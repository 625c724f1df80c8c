package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/camelcase"
	"gopkg.in/yaml.v3"

	"github.com/crucible-ci/crucible/internal/domain"
)

// File is one generated scaffold file, path relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// Generate produces the bootstrap scaffold: the project manifest with
// placeholder metadata, a lint configuration derived from the default
// policy, and a CI workflow that invokes the dispatcher. pkgName may be
// empty; the manifest then keeps its TODO placeholder.
func Generate(pkgName string) ([]File, error) {
	policy := domain.DefaultLintPolicy()

	lintCfg, err := golangciConfig(policy)
	if err != nil {
		return nil, fmt.Errorf("rendering lint config: %w", err)
	}

	wf, err := workflowConfig(pkgName)
	if err != nil {
		return nil, fmt.Errorf("rendering workflow: %w", err)
	}

	return []File{
		{Path: domain.ManifestFileName, Content: []byte(manifestContent(pkgName, policy))},
		{Path: ".golangci.yml", Content: lintCfg},
		{Path: filepath.Join(".github", "workflows", "ci.yml"), Content: wf},
	}, nil
}

// Write places the generated files under dir. Without force, any existing
// target aborts the whole write before anything is touched.
func Write(dir string, files []File, force bool) error {
	if !force {
		for _, f := range files {
			if _, err := os.Stat(filepath.Join(dir, f.Path)); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", f.Path)
			}
		}
	}

	for _, f := range files {
		dest := filepath.Join(dir, f.Path)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(f.Path), err)
		}
		if err := os.WriteFile(dest, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

func manifestContent(pkgName string, policy map[string]domain.Severity) string {
	defaults := domain.DefaultManifest()

	name := defaults.Package.Name
	nameComment := ""
	if pkgName != "" {
		name = pkgName
	} else {
		nameComment = " # TODO: update package name"
	}

	var b strings.Builder
	b.WriteString("# crucible project manifest\n")
	b.WriteString("# See: https://github.com/crucible-ci/crucible\n\n")
	b.WriteString("[package]\n")
	fmt.Fprintf(&b, "name = %q%s\n", name, nameComment)
	fmt.Fprintf(&b, "version = %q\n", defaults.Package.Version)
	b.WriteString("authors = [] # TODO: add authors\n")
	b.WriteString("description = \"\" # TODO: add description\n")
	b.WriteString("license = \"\"\n")
	b.WriteString("repository = \"\"\n\n")

	b.WriteString("[toolchain]\n")
	fmt.Fprintf(&b, "msrv = %q\n", defaults.Toolchain.MSRV)
	fmt.Fprintf(&b, "beta = %q\n\n", defaults.Toolchain.Beta)

	b.WriteString("[env]\n")
	for _, k := range sortedKeys(defaults.Env) {
		fmt.Fprintf(&b, "%s = %q\n", k, defaults.Env[k])
	}
	b.WriteString("\n")

	b.WriteString("[lint]\n")
	b.WriteString("# rule = \"allow\" | \"warn\" | \"deny\"\n")
	for _, rule := range sortedPolicyKeys(policy) {
		fmt.Fprintf(&b, "%s = %q\n", rule, policy[rule])
	}

	return b.String()
}

// golangciCfg mirrors the subset of the golangci-lint config the severity
// table maps onto: deny and warn rules run, allow rules stay disabled, warn
// rules are demoted to warning severity.
type golangciCfg struct {
	Linters struct {
		Enable  []string `yaml:"enable,omitempty"`
		Disable []string `yaml:"disable,omitempty"`
	} `yaml:"linters"`
	Severity struct {
		Default string         `yaml:"default"`
		Rules   []severityRule `yaml:"rules,omitempty"`
	} `yaml:"severity"`
}

type severityRule struct {
	Linters  []string `yaml:"linters,flow"`
	Severity string   `yaml:"severity"`
}

func golangciConfig(policy map[string]domain.Severity) ([]byte, error) {
	var cfg golangciCfg
	cfg.Severity.Default = "error"

	var warned []string
	for _, rule := range sortedPolicyKeys(policy) {
		switch policy[rule] {
		case domain.SeverityAllow:
			cfg.Linters.Disable = append(cfg.Linters.Disable, rule)
		case domain.SeverityWarn:
			cfg.Linters.Enable = append(cfg.Linters.Enable, rule)
			warned = append(warned, rule)
		case domain.SeverityDeny:
			cfg.Linters.Enable = append(cfg.Linters.Enable, rule)
		}
	}
	if len(warned) > 0 {
		cfg.Severity.Rules = []severityRule{{Linters: warned, Severity: "warning"}}
	}

	return yaml.Marshal(&cfg)
}

// Workflow document, kept as structs so field order is stable.
type workflow struct {
	Name string   `yaml:"name"`
	On   triggers `yaml:"on"`
	Jobs struct {
		CI job `yaml:"ci"`
	} `yaml:"jobs"`
}

type triggers struct {
	Push        branchFilter `yaml:"push"`
	PullRequest struct{}     `yaml:"pull_request"`
}

type branchFilter struct {
	Branches []string `yaml:"branches,flow"`
}

type job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []step `yaml:"steps"`
}

type step struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

func workflowConfig(pkgName string) ([]byte, error) {
	wf := workflow{Name: workflowName(pkgName)}
	wf.On.Push.Branches = []string{"main"}
	wf.Jobs.CI = job{
		RunsOn: "ubuntu-latest",
		Steps: []step{
			{Uses: "actions/checkout@v4"},
			{
				Uses: "actions/setup-go@v5",
				With: map[string]string{"go-version": "stable"},
			},
			{
				Name: "Install crucible",
				Run:  "go install github.com/crucible-ci/crucible/cmd/crucible@latest",
			},
			{
				Name: "Run CI",
				Run:  "crucible run",
			},
		},
	}
	return yaml.Marshal(&wf)
}

// workflowName humanizes the package name: "myCoolTool" -> "My Cool Tool CI".
// Placeholder or empty names fall back to plain "CI".
func workflowName(pkgName string) string {
	if pkgName == "" || strings.HasPrefix(pkgName, "TODO") {
		return "CI"
	}
	words := camelcase.Split(strings.ReplaceAll(pkgName, "-", " "))
	for i, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	name := strings.Join(words, " ")
	name = strings.Join(strings.Fields(name), " ")
	return name + " CI"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedPolicyKeys(m map[string]domain.Severity) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
