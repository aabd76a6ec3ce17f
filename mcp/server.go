// Package mcp exposes the learn pipeline as agent tools over the Model
// Context Protocol. Each source kind gets its own tool so agents pick the
// fetch strategy by picking the tool; the tools are thin adapters that fix
// the source kind and forward the remaining parameters.
package mcp

import (
	"context"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// learnTool describes one source-kind adapter.
type learnTool struct {
	name     string
	kind     smarty.SourceKind
	argName  string
	argDesc  string
	toolDesc string
}

var learnTools = []learnTool{
	{
		name:     "learn_from_url",
		kind:     smarty.SourceWeb,
		argName:  "url",
		argDesc:  "Web page URL to fetch",
		toolDesc: "Fetch a web page, convert it to markdown, and save it in .smarts/.",
	},
	{
		name:     "learn_from_man",
		kind:     smarty.SourceMan,
		argName:  "man_page",
		argDesc:  "Man page name, e.g. 'tar' or 'git-rebase'",
		toolDesc: "Convert a man page to markdown and save it in .smarts/.",
	},
	{
		name:     "learn_from_javadoc",
		kind:     smarty.SourceJavadoc,
		argName:  "package_id",
		argDesc:  "Maven coordinate (group:artifact:version) or a full javadoc URL",
		toolDesc: "Fetch JavaDoc and save it as markdown in .smarts/.",
	},
	{
		name:     "learn_from_sphinx",
		kind:     smarty.SourceSphinx,
		argName:  "package_id",
		argDesc:  "PyPI package name (fetched from ReadTheDocs) or a full URL",
		toolDesc: "Fetch Python Sphinx docs and save them as markdown in .smarts/.",
	},
	{
		name:     "learn_from_godoc",
		kind:     smarty.SourceGodoc,
		argName:  "module",
		argDesc:  "Go module path (uses go doc, falling back to pkg.go.dev) or a full URL",
		toolDesc: "Fetch Go documentation and save it as markdown in .smarts/.",
	},
	{
		name:     "learn_from_rustdoc",
		kind:     smarty.SourceRustdoc,
		argName:  "crate",
		argDesc:  "Crate name (fetched from docs.rs) or a full URL",
		toolDesc: "Fetch Rust documentation and save it as markdown in .smarts/.",
	},
}

// New creates the MCP server with all tools registered.
func New(learner smarty.Learner, bootstrap smarty.Bootstrapper) *server.MCPServer {
	s := server.NewMCPServer(
		"smarty-mcfly",
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("setup_smarts",
			mcp.WithDescription("Clone the seed .smarts documentation directory into the project if it doesn't exist. Safe to call multiple times."),
			mcp.WithString("project_root", mcp.Description("Project root directory (defaults to the current directory)")),
		),
		setupHandler(bootstrap),
	)

	for _, t := range learnTools {
		s.AddTool(
			mcp.NewTool(t.name,
				mcp.WithDescription(t.toolDesc+" Updates .smarts/MANIFEST.md with the new topic entry."),
				mcp.WithString("topic", mcp.Required(), mcp.Description("Topic (directory) to file the documentation under")),
				mcp.WithString("subtopic", mcp.Required(), mcp.Description("Subtopic (file name) for the documentation")),
				mcp.WithString(t.argName, mcp.Required(), mcp.Description(t.argDesc)),
				mcp.WithString("project_root", mcp.Description("Project root directory (defaults to the current directory)")),
			),
			learnHandler(learner, t.kind, t.argName),
		)
	}

	return s
}

// ServeStdio runs the server over stdio until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func setupHandler(bootstrap smarty.Bootstrapper) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("project_root", ".")

		path, created, err := bootstrap.Ensure(ctx, root)
		if err != nil {
			return mcp.NewToolResultError(smarty.ErrorMessage(err)), nil
		}
		if !created {
			return mcp.NewToolResultText("Smarts already available at " + path), nil
		}
		return mcp.NewToolResultText("Smarts cloned to " + path), nil
	}
}

func learnHandler(learner smarty.Learner, kind smarty.SourceKind, argName string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topic, err := req.RequireString("topic")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		subtopic, err := req.RequireString("subtopic")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := req.RequireString(argName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		path, err := learner.Learn(ctx, smarty.LearnRequest{
			Topic:       topic,
			Subtopic:    subtopic,
			Source:      smarty.Source{Kind: kind, Value: value},
			ProjectRoot: req.GetString("project_root", "."),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("Documentation saved to " + path), nil
	}
}
