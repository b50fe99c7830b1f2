package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hud/renderer"
	"github.com/google/subcommands"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported by the MCP server.
var Version = "dev"

type mcpCmd struct{}

func (*mcpCmd) Name() string     { return "mcp" }
func (*mcpCmd) Synopsis() string { return "serve the HUD over MCP on stdio" }
func (*mcpCmd) Usage() string {
	return `hud mcp

  Serves a Model Context Protocol server on stdin/stdout with a
  render_dashboard tool returning the current HUD.
`
}

func (*mcpCmd) SetFlags(f *flag.FlagSet) {}

func (*mcpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	client := newClient(cfg)

	s := server.NewMCPServer("hud", Version, server.WithToolCapabilities(true))
	s.AddTool(createRenderDashboardTool(), handleRenderDashboard(func(ctx context.Context) (string, error) {
		return renderDashboard(ctx, cfg, client)
	}))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func createRenderDashboardTool() mcp.Tool {
	return mcp.NewTool("render_dashboard",
		mcp.WithDescription("Render the daily HUD: health status, sleep, breathwork, running, market returns, news, macro agenda and insights."),
		mcp.WithString("format", mcp.Description("Output format: 'markdown' (default) or 'html'.")),
	)
}

func handleRenderDashboard(render func(context.Context) (string, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := render(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}
		switch format := request.GetString("format", "markdown"); format {
		case "markdown", "md", "":
		case "html":
			if out, err = renderer.HTML(out); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
			}
		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", format)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
