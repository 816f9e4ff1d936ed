package bridgeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine"
	"github.com/lassyamkotian2006/AI-Powered-Skill-to-Work-Bridge/internal/engine/match"
)

func registerRoleCatalog(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "role_catalog",
		Description: "List the job role catalog: titles, experience tiers, salary bands, demand scores and tiered skill requirements. Useful for choosing a target_role for learning_path.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.RoleCatalogInput) (*mcp.CallToolResult, engine.RoleCatalogOutput, error) {
		roles := engine.Cfg.Catalog

		if level := strings.ToLower(strings.TrimSpace(input.ExperienceLevel)); level != "" {
			switch level {
			case match.ExperienceEntry, match.ExperienceMid, match.ExperienceSenior:
			default:
				return nil, engine.RoleCatalogOutput{}, fmt.Errorf("invalid experience_level %q (valid: entry, mid, senior)", level)
			}
			var filtered []match.JobRole
			for _, role := range roles {
				if role.ExperienceLevel == level {
					filtered = append(filtered, role)
				}
			}
			roles = filtered
		}

		if roles == nil {
			roles = []match.JobRole{}
		}
		return nil, engine.RoleCatalogOutput{Roles: roles, Total: len(roles)}, nil
	})
}
