package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/ciusage/internal/domain"
)

const unitsURI = "ciusage://units"

type unitFactor struct {
	Unit           string  `json:"unit"`
	GigabyteFactor float64 `json:"gigabyte_factor"`
}

// registerResources registers all ciusage MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			unitsURI,
			"Units",
			mcplib.WithResourceDescription("Multipliers converting each license usage unit to gigabytes"),
			mcplib.WithMIMEType("application/json"),
		),
		handleUnitsResource,
	)
}

func handleUnitsResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	factors := make([]unitFactor, 0, len(domain.KnownUnits))
	for _, u := range domain.KnownUnits {
		f, _ := domain.GigabyteFactor(u)
		factors = append(factors, unitFactor{Unit: u, GigabyteFactor: f})
	}

	data, err := json.MarshalIndent(factors, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling units: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      unitsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
