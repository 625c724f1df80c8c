package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/crucible-ci/crucible/internal/domain"
)

var (
	accent  = lipgloss.Color("#3B82F6") // blue
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	arrowStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	stageStyle  = lipgloss.NewStyle().Bold(true)
	summaryPass = lipgloss.NewStyle().Bold(true).Foreground(success)
	summaryFail = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

// RenderHeader renders a stage header line: a bold arrow and the text.
func RenderHeader(text string) string {
	return fmt.Sprintf("%s %s\n", arrowStyle.Render("==>"), titleStyle.Render(text))
}

// RenderCommand renders the tool invocation about to run, shell-style.
func RenderCommand(c domain.Command) string {
	var parts []string
	for _, k := range sortedEnvKeys(c.Env) {
		parts = append(parts, k+"="+c.Env[k])
	}
	parts = append(parts, c.Argv...)
	return dimStyle.Render("  $ "+strings.Join(parts, " ")) + "\n"
}

// RenderBanner renders the run banner: project identity, git position and
// toolchain status. Any piece may be missing.
func RenderBanner(m *domain.Manifest, git domain.GitStatus, haveGit bool, goVersion string, msrvOK bool) string {
	var b strings.Builder

	if m != nil {
		b.WriteString(titleStyle.Render(m.Package.Name))
		if m.Package.Version != "" {
			b.WriteString(" " + dimStyle.Render("v"+m.Package.Version))
		}
		b.WriteString("\n")
	}

	if haveGit {
		pos := git.Commit
		if git.Branch != "" {
			pos = git.Branch + " @ " + git.Commit
		}
		b.WriteString(dimStyle.Render("git: "+pos) + "\n")
	}

	if goVersion != "" {
		line := "go: " + goVersion
		if m != nil && m.Toolchain.MSRV != "" {
			if msrvOK {
				line += "  (msrv " + m.Toolchain.MSRV + " satisfied)"
			} else {
				line += "  (below msrv " + m.Toolchain.MSRV + ")"
			}
		}
		if msrvOK {
			b.WriteString(dimStyle.Render(line) + "\n")
		} else {
			b.WriteString(failStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}

// RenderStageList renders the stage catalog for the stages command.
func RenderStageList(infos []domain.StageInfo) string {
	width := 0
	for _, info := range infos {
		if len(info.Name) > width {
			width = len(info.Name)
		}
	}

	var b strings.Builder
	b.WriteString(RenderHeader("Stages"))
	for _, info := range infos {
		name := stageStyle.Render(fmt.Sprintf("%-*s", width, info.Name))
		b.WriteString(fmt.Sprintf("  %s  %s\n", name, dimStyle.Render(info.Summary)))
	}
	return b.String()
}

// RenderRunReport renders the per-stage summary after a run.
func RenderRunReport(report *domain.RunReport) string {
	if report == nil || len(report.Stages) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, res := range report.Stages {
		mark := passStyle.Render("✓")
		if !res.Passed {
			mark = failStyle.Render("✗")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			mark,
			stageStyle.Render(string(res.Stage)),
			dimStyle.Render(formatDuration(res.Duration)),
		))
	}

	b.WriteString("\n")
	if report.Passed {
		b.WriteString(summaryPass.Render("All checks passed!") + "\n")
	} else {
		b.WriteString(summaryFail.Render("CI failed.") + "\n")
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

func sortedEnvKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
