package engine

import (
	"context"

	"github.com/elev8tion/phoenix/internal/module"
	"github.com/elev8tion/phoenix/internal/rebuild"
)

// RegisterDefaultTools registers a handler for every catalog module's
// configure and generate operations. The default handlers validate the
// call shape and succeed; the template engine does the actual file work
// through the ProjectEngine contract. External tool integrations replace
// individual handlers by re-registering the same names.
func RegisterDefaultTools(r *rebuild.Registry) {
	for _, m := range module.Catalog() {
		r.Register(m.ConfigureTool, acceptingTool)
		r.Register(m.GenerateTool, acceptingTool)
	}
}

func acceptingTool(ctx context.Context, args map[string]any) *rebuild.ToolResult {
	if _, ok := args["project_id"]; !ok {
		return &rebuild.ToolResult{Success: false, Error: "missing project_id"}
	}
	return &rebuild.ToolResult{Success: true}
}
