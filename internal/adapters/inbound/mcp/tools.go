package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/crucible-ci/crucible/internal/adapters/outbound/execrunner"
	"github.com/crucible-ci/crucible/internal/adapters/outbound/manifest"
	"github.com/crucible-ci/crucible/internal/application"
	"github.com/crucible-ci/crucible/internal/domain"
)

// registerTools registers the crucible MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. crucible_stages
	s.AddTool(
		mcplib.NewTool("crucible_stages",
			mcplib.WithDescription("Returns the list of CI stages in execution order as JSON"),
		),
		handleStages(),
	)

	// 2. crucible_run
	s.AddTool(
		mcplib.NewTool("crucible_run",
			mcplib.WithDescription("Run one CI stage (or the full fail-fast sequence) and return the run report as JSON"),
			mcplib.WithString("stage",
				mcplib.Description("Stage token to run (default: all)"),
			),
		),
		handleRun(projectPath),
	)
}

func handleStages() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.Catalog())
	}
}

func handleRun(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		token := request.GetString("stage", string(domain.StageAll))

		svc := application.NewRunService(execrunner.New(), manifest.NewLoader(), silentReporter{})
		report, err := svc.Run(ctx, projectPath, token)
		if err != nil {
			if report != nil && len(report.Stages) > 0 {
				// A stage failed: the report carries the detail.
				return jsonResult(report)
			}
			return errorResult(fmt.Sprintf("run failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// silentReporter discards progress events; MCP clients only see the report.
type silentReporter struct{}

func (silentReporter) StageStarted(domain.Stage)        {}
func (silentReporter) CommandStarted(domain.Command)    {}
func (silentReporter) StageFinished(domain.StageResult) {}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
