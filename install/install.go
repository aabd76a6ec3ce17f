// Package install edits agent configuration files: it inserts the MCP server
// block into a settings.json and appends the manifest rule to a rules file
// (CLAUDE.md, .cursorrules). Every edit is shown as a colored unified diff
// and applied only after confirmation.
package install

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// AgentRule is the rule appended to a rules file. It points agents at the
// manifest so learned documentation actually gets read.
const AgentRule = `
## Smarty McFly Documentation

**MANDATORY:** Before answering ANY question about a software tool, library, API, or CLI command, you MUST:

1. Read ` + "`.smarts/MANIFEST.md`" + ` — no exceptions, even if you think you already know the answer.
2. If a matching topic is found, you MUST read every linked markdown file in that section before responding.
3. Base your answer on the documentation you read. Do not rely on training knowledge when local docs exist.
`

// serverName is the key under which the MCP server is registered.
const serverName = "smarty-mcfly"

// Prompter asks the user a yes/no question. Injected so tests need no TTY.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}

// Installer applies settings edits with diff preview and confirmation.
type Installer struct {
	Prompter Prompter
	Stdout   io.Writer
}

// InstallMCP inserts the smarty-mcfly server block into a settings.json
// file, supporting both the Claude Desktop (mcpServers) and VS Code
// (mcp.servers) layouts.
//
// The file is re-serialized with keys in sorted order, so the first run may
// reorder existing settings. The diff preview shows any such reordering
// before it is applied.
func (i *Installer) InstallMCP(settingsPath string) error {
	original, err := os.ReadFile(settingsPath)
	if err != nil {
		return smarty.Errorf(smarty.ENOTFOUND, "reading %s: %v", settingsPath, err)
	}

	var settings map[string]any
	if err := json.Unmarshal(original, &settings); err != nil {
		return smarty.Errorf(smarty.EINVALID, "invalid JSON in %s: %v", settingsPath, err)
	}

	AddMCPServer(settings)

	// Plain encoding keeps &, <, and > literal, matching what users wrote
	// by hand; MarshalIndent would turn them into \uXXXX escapes.
	var modified bytes.Buffer
	enc := json.NewEncoder(&modified)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(settings); err != nil {
		return smarty.Errorf(smarty.EINTERNAL, "encoding settings: %v", err)
	}

	return i.apply(settingsPath, string(original), modified.String())
}

// InstallRules appends the agent rule to a rules file, creating it if
// absent. A file that already mentions the smarts directory is left alone.
func (i *Installer) InstallRules(rulesPath string) error {
	original := ""
	if data, err := os.ReadFile(rulesPath); err == nil {
		original = string(data)
	} else if !os.IsNotExist(err) {
		return smarty.Errorf(smarty.EIO, "reading %s: %v", rulesPath, err)
	}

	if strings.Contains(original, ".smarts") || strings.Contains(original, "Smarty McFly") {
		fmt.Fprintln(i.Stdout, "Smarty McFly rules already present in file.")
		return nil
	}

	return i.apply(rulesPath, original, original+AgentRule)
}

// apply shows the diff, asks for confirmation, and writes the file.
func (i *Installer) apply(path, original, modified string) error {
	diff, err := RenderDiff(original, modified, path)
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintln(i.Stdout, "No changes needed.")
		return nil
	}

	fmt.Fprint(i.Stdout, colorizeDiff(diff))

	ok, err := i.Prompter.Confirm("Apply changes? [y/N] ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(i.Stdout, "Changes not applied.")
		return nil
	}

	if err := os.WriteFile(path, []byte(modified), 0o644); err != nil {
		return smarty.Errorf(smarty.EIO, "writing %s: %v", path, err)
	}
	fmt.Fprintf(i.Stdout, "Changes applied to %s\n", path)
	return nil
}

// AddMCPServer inserts the server block into a parsed settings document,
// detecting the VS Code layout by the presence of a top-level "mcp" key.
func AddMCPServer(settings map[string]any) {
	config := map[string]any{
		"command": "smarty-mcfly",
		"args":    []any{"serve"},
	}

	if mcpSection, ok := settings["mcp"].(map[string]any); ok {
		servers, ok := mcpSection["servers"].(map[string]any)
		if !ok {
			servers = map[string]any{}
			mcpSection["servers"] = servers
		}
		config["type"] = "stdio"
		servers[serverName] = config
		return
	}

	servers, ok := settings["mcpServers"].(map[string]any)
	if !ok {
		servers = map[string]any{}
		settings["mcpServers"] = servers
	}
	servers[serverName] = config
}

// RenderDiff produces a unified diff between the original and modified
// content. Returns "" when the content is identical.
func RenderDiff(original, modified, filename string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  3,
	})
	if err != nil {
		return "", smarty.Errorf(smarty.EINTERNAL, "generating diff: %v", err)
	}
	return diff, nil
}

// colorizeDiff applies conventional diff colors per line.
func colorizeDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			b.WriteString(color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(color.RedString("%s", line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(color.CyanString("%s", line))
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}
