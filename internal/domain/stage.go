package domain

// StageName identifies one named unit of CI work.
type StageName string

// StageAll is the reserved token selecting the full fail-fast sequence.
const StageAll StageName = "all"

const (
	StageFmt      StageName = "fmt"
	StageDocs     StageName = "docs"
	StageBuild    StageName = "build"
	StageLint     StageName = "lint"
	StageTest     StageName = "test"
	StageTestBeta StageName = "test-beta"
	StageTestMSRV StageName = "test-msrv"
	StageTestASAN StageName = "test-asan"
	StageTestRace StageName = "test-race"
)

// Command is one external tool invocation. Env is overlaid on the process
// environment by the runner; Capture swallows stdout instead of streaming it.
type Command struct {
	Argv    []string
	Env     map[string]string
	Dir     string
	Capture bool
}

// Stage is a named unit of CI work: one or more tool invocations executed in
// order. FailOnOutput marks stages whose tool signals problems by printing
// file names rather than by its exit status (gofmt -l).
type Stage struct {
	Name         StageName
	Summary      string
	Commands     []Command
	FailOnOutput bool
}

// StageInfo is the listing view of a stage.
type StageInfo struct {
	Name    StageName `json:"name"`
	Summary string    `json:"summary"`
}

type stageDef struct {
	name    StageName
	summary string
}

// Execution order of the "all" sequence.
var stageDefs = []stageDef{
	{StageFmt, "Check code formatting (gofmt)"},
	{StageDocs, "Build documentation under the local and beta toolchains"},
	{StageBuild, "Compile all packages"},
	{StageLint, "Lint with golangci-lint"},
	{StageTest, "Run tests with the local toolchain"},
	{StageTestBeta, "Run tests with the beta toolchain channel"},
	{StageTestMSRV, "Run tests with the minimum supported Go version"},
	{StageTestASAN, "Run tests under the address/leak sanitizer"},
	{StageTestRace, "Run tests under the race detector"},
}

// StageNames returns every valid stage token, "all" first, in execution order.
func StageNames() []string {
	names := make([]string, 0, len(stageDefs)+1)
	names = append(names, string(StageAll))
	for _, def := range stageDefs {
		names = append(names, string(def.name))
	}
	return names
}

// Catalog returns the listing view of every stage, "all" included.
func Catalog() []StageInfo {
	infos := make([]StageInfo, 0, len(stageDefs)+1)
	infos = append(infos, StageInfo{
		Name:    StageAll,
		Summary: "Run every stage in order, stopping at the first failure",
	})
	for _, def := range stageDefs {
		infos = append(infos, StageInfo{Name: def.name, Summary: def.summary})
	}
	return infos
}

// BuildStages materializes the stage plans for a manifest, in the execution
// order of the "all" sequence. The manifest contributes the pass-through env
// table and the toolchain channels; everything else is fixed.
func BuildStages(m *Manifest) []Stage {
	base := m.Env

	goTest := func(extraEnv map[string]string, args ...string) Command {
		argv := append([]string{"go", "test"}, args...)
		argv = append(argv, "./...")
		return Command{Argv: argv, Env: overlay(base, extraEnv)}
	}

	betaEnv := map[string]string{}
	if m.Toolchain.Beta != "" {
		betaEnv["GOTOOLCHAIN"] = m.Toolchain.Beta
	}
	msrvEnv := map[string]string{}
	if m.Toolchain.MSRV != "" {
		msrvEnv["GOTOOLCHAIN"] = "go" + m.Toolchain.MSRV
	}

	stages := []Stage{
		{
			Name:         StageFmt,
			Commands:     []Command{{Argv: []string{"gofmt", "-l", "."}, Env: overlay(base, nil), Capture: true}},
			FailOnOutput: true,
		},
		{
			Name: StageDocs,
			Commands: []Command{
				{Argv: []string{"go", "doc", "-all", "."}, Env: overlay(base, nil), Capture: true},
				{Argv: []string{"go", "doc", "-all", "."}, Env: overlay(base, betaEnv), Capture: true},
			},
		},
		{
			Name:     StageBuild,
			Commands: []Command{{Argv: []string{"go", "build", "./..."}, Env: overlay(base, nil)}},
		},
		{
			Name:     StageLint,
			Commands: []Command{{Argv: []string{"golangci-lint", "run", "./..."}, Env: overlay(base, nil)}},
		},
		{Name: StageTest, Commands: []Command{goTest(nil)}},
		{Name: StageTestBeta, Commands: []Command{goTest(betaEnv)}},
		{Name: StageTestMSRV, Commands: []Command{goTest(msrvEnv)}},
		{Name: StageTestASAN, Commands: []Command{goTest(nil, "-asan")}},
		{Name: StageTestRace, Commands: []Command{goTest(nil, "-race")}},
	}

	for i := range stages {
		stages[i].Summary = stageDefs[i].summary
	}
	return stages
}

// FindStage looks a token up in a built stage list.
func FindStage(stages []Stage, token string) (Stage, bool) {
	for _, st := range stages {
		if string(st.Name) == token {
			return st, true
		}
	}
	return Stage{}, false
}

// overlay merges extra on top of base into a fresh map. Nil when both are
// empty so commands without overrides stay env-free.
func overlay(base, extra map[string]string) map[string]string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
