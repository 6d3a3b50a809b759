package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/ciusage/internal/adapters/outbound/asadm"
	"github.com/openkraft/ciusage/internal/adapters/outbound/cache"
	"github.com/openkraft/ciusage/internal/adapters/outbound/config"
	"github.com/openkraft/ciusage/internal/adapters/outbound/history"
	"github.com/openkraft/ciusage/internal/adapters/outbound/parser"
	"github.com/openkraft/ciusage/internal/adapters/outbound/scanner"
	"github.com/openkraft/ciusage/internal/adapters/outbound/xlsx"
	"github.com/openkraft/ciusage/internal/application"
	"github.com/openkraft/ciusage/internal/domain"
)

// registerTools registers all ciusage MCP tools on the given server.
func registerTools(s *server.MCPServer, tool string) {
	// 1. ciusage_summarize
	s.AddTool(
		mcplib.NewTool("ciusage_summarize",
			mcplib.WithDescription("Summarize license usage for every collectinfo bundle in a directory, write the spreadsheet and return the run as JSON"),
			mcplib.WithString("directory",
				mcplib.Required(),
				mcplib.Description("Path of the directory holding the bundles"),
			),
			mcplib.WithNumber("timeout_seconds", mcplib.Description("Per-file tool timeout in seconds, 0 for none")),
			mcplib.WithBoolean("all_files", mcplib.Description("Run the tool on every regular file, not only archives")),
		),
		handleSummarize(tool, config.New()),
	)

	// 2. ciusage_parse_summary
	s.AddTool(
		mcplib.NewTool("ciusage_parse_summary",
			mcplib.WithDescription("Extract cluster name and license usage in GB from captured summary output"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Text printed by the summary report"),
			),
		),
		handleParseSummary(),
	)

	// 3. ciusage_convert
	s.AddTool(
		mcplib.NewTool("ciusage_convert",
			mcplib.WithDescription("Convert a license usage value to gigabytes rounded to 2 decimals"),
			mcplib.WithNumber("value",
				mcplib.Required(),
				mcplib.Description("Usage value"),
			),
			mcplib.WithString("unit",
				mcplib.Required(),
				mcplib.Description("One of B, KB, MB, GB, TB, PB"),
			),
		),
		handleConvert(),
	)
}

type usageResult struct {
	ClusterName    string  `json:"cluster_name,omitempty"`
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	LicenseUsageGB float64 `json:"license_usage_gb"`
	UnitKnown      bool    `json:"unit_known"`
}

func newUsageResult(s domain.Summary) usageResult {
	gb, known := domain.ToGigabytes(s.Value, s.Unit)
	return usageResult{
		ClusterName:    s.ClusterName,
		Value:          s.Value,
		Unit:           s.Unit,
		LicenseUsageGB: gb,
		UnitKnown:      known,
	}
}

func handleSummarize(tool string, loader domain.ConfigLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, err := request.RequireString("directory")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if _, err := os.Stat(dir); err != nil {
			return errorResult(fmt.Sprintf("%v: %s", domain.ErrPathNotFound, dir)), nil
		}

		cfg, err := loader.Load(dir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		if tool != "" {
			cfg.Tool = tool
		}
		if secs, ok := request.GetArguments()["timeout_seconds"].(float64); ok && secs > 0 {
			cfg.Timeout = time.Duration(secs * float64(time.Second))
		}
		if all, _ := request.GetArguments()["all_files"].(bool); all {
			cfg.ClassifyPolicy = domain.PolicyAll
		}

		// stdout carries the protocol stream.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		svc := application.NewSummarizeService(
			scanner.New(),
			asadm.New(cfg.Tool, cfg.Timeout, logger),
			parser.New(),
			xlsx.New(cfg.SheetName),
		).WithCache(cache.New()).WithHistory(history.New()).WithLogger(logger)

		result, err := svc.Summarize(ctx, dir, cfg, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("summarize failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleParseSummary() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		summary, err := parser.New().Parse(text)
		if errors.Is(err, domain.ErrUsageMissing) {
			return errorResult("no License Usage Latest line found in text"), nil
		}
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(newUsageResult(summary))
	}
}

func handleConvert() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		value, ok := request.GetArguments()["value"].(float64)
		if !ok {
			return errorResult("value must be a number"), nil
		}
		unit, err := request.RequireString("unit")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(newUsageResult(domain.Summary{Value: value, Unit: unit}))
	}
}

// jsonResult marshals v to indented JSON and wraps it in a text result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
