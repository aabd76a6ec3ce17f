package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/bayne/smarty-mcfly/convert"
	smartyexec "github.com/bayne/smarty-mcfly/exec"
	"github.com/bayne/smarty-mcfly/fetch"
	"github.com/bayne/smarty-mcfly/fs"
	"github.com/bayne/smarty-mcfly/git"
	"github.com/bayne/smarty-mcfly/goquery"
	"github.com/bayne/smarty-mcfly/htmltomarkdown"
	smartyhttp "github.com/bayne/smarty-mcfly/http"
	"github.com/bayne/smarty-mcfly/install"
	"github.com/bayne/smarty-mcfly/learn"
	"github.com/bayne/smarty-mcfly/mcp"
	"github.com/bayne/smarty-mcfly/pandoc"
	smartyslog "github.com/bayne/smarty-mcfly/slog"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Learn   LearnCmd   `cmd:"" help:"Fetch documentation from a source, convert to markdown, and store in .smarts/."`
	Smarts  SmartsCmd  `cmd:"" help:"Clone the seed .smarts documentation directory into the project if it doesn't exist."`
	Serve   ServeCmd   `cmd:"" help:"Start the MCP server on stdio (for Claude Desktop, VS Code, etc.)."`
	Install InstallCmd `cmd:"" help:"Install MCP server configuration or agent rules into settings files."`
}

// Dependencies holds all services and configuration for command execution.
// The service fields are optional overrides; when nil, commands wire the
// real implementations.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Learner   smarty.Learner
	Bootstrap smarty.Bootstrapper
	Prompter  install.Prompter
}

// buildLearner wires the production pipeline.
func buildLearner(timeout time.Duration, logger *slog.Logger) smarty.Learner {
	learner := &learn.Learner{
		Fetcher: &fetch.Fetcher{
			HTTP:  smartyhttp.NewFetcher(smartyhttp.WithTimeout(timeout)),
			Man:   &smartyexec.ManPages{Timeout: timeout},
			GoDoc: &smartyexec.GoDocTool{Timeout: timeout},
		},
		Converter: &convert.Converter{
			HTML: htmltomarkdown.NewConverter(),
			Man:  pandoc.NewManConverter(),
		},
		Titles: goquery.NewTitler(),
		Store:  fs.NewTopicStore(),
	}
	return smartyslog.NewLoggingLearner(learner, logger)
}

// LearnCmd fetches one piece of documentation. Exactly one source flag must
// be provided.
type LearnCmd struct {
	Topic    string `arg:"" help:"Topic (directory) to file the documentation under."`
	Subtopic string `arg:"" help:"Subtopic (file name) for the documentation."`

	URL     string `help:"Fetch a web page and convert the HTML." xor:"source"`
	Man     string `help:"Convert a man page." xor:"source"`
	Javadoc string `help:"Fetch JavaDoc (URL or Maven coordinate group:artifact:version)." xor:"source"`
	Sphinx  string `help:"Fetch Sphinx docs (URL or ReadTheDocs package name)." xor:"source"`
	Godoc   string `help:"Fetch Go docs (URL or module path via go doc / pkg.go.dev)." xor:"source"`
	Rustdoc string `help:"Fetch Rust docs (URL or crate name via docs.rs)." xor:"source"`

	ProjectRoot string        `default:"." help:"Project root directory."`
	Timeout     time.Duration `default:"30s" help:"Fetch timeout."`
}

// source returns the single provided source descriptor.
func (c *LearnCmd) source() (smarty.Source, error) {
	options := []struct {
		kind  smarty.SourceKind
		value string
	}{
		{smarty.SourceWeb, c.URL},
		{smarty.SourceMan, c.Man},
		{smarty.SourceJavadoc, c.Javadoc},
		{smarty.SourceSphinx, c.Sphinx},
		{smarty.SourceGodoc, c.Godoc},
		{smarty.SourceRustdoc, c.Rustdoc},
	}

	var provided []smarty.Source
	for _, opt := range options {
		if opt.value != "" {
			provided = append(provided, smarty.Source{Kind: opt.kind, Value: opt.value})
		}
	}

	switch len(provided) {
	case 1:
		return provided[0], nil
	case 0:
		return smarty.Source{}, fmt.Errorf("specify one of --url, --man, --javadoc, --sphinx, --godoc, --rustdoc")
	default:
		var names []string
		for _, src := range provided {
			names = append(names, src.Kind.String())
		}
		return smarty.Source{}, fmt.Errorf("only one source flag allowed, got: %s", strings.Join(names, ", "))
	}
}

func (c *LearnCmd) Run(deps *Dependencies) error {
	src, err := c.source()
	if err != nil {
		return err
	}

	learner := deps.Learner
	if learner == nil {
		learner = buildLearner(c.Timeout, deps.Logger)
	}

	path, err := learner.Learn(deps.Ctx, smarty.LearnRequest{
		Topic:       c.Topic,
		Subtopic:    c.Subtopic,
		Source:      src,
		ProjectRoot: c.ProjectRoot,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documentation saved to %s\n", path)
	return nil
}

// SmartsCmd clones the seed documentation directory into the project.
type SmartsCmd struct {
	ProjectRoot string `arg:"" optional:"" default:"." help:"Project root directory."`
}

func (c *SmartsCmd) Run(deps *Dependencies) error {
	bootstrap := deps.Bootstrap
	if bootstrap == nil {
		bootstrap = &git.Bootstrap{}
	}

	path, created, err := bootstrap.Ensure(deps.Ctx, c.ProjectRoot)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(deps.Stdout, "Smarts cloned to %s\n", path)
	} else {
		fmt.Fprintf(deps.Stdout, "Smarts already available at %s\n", path)
	}
	return nil
}

// ServeCmd runs the MCP server on stdio.
type ServeCmd struct {
	Timeout   time.Duration `default:"30s" help:"Fetch timeout per learn call."`
	RateLimit float64       `default:"2" help:"Outgoing HTTP requests per second."`
}

func (c *ServeCmd) Run(deps *Dependencies) error {
	learner := deps.Learner
	if learner == nil {
		inner := &learn.Learner{
			Fetcher: &fetch.Fetcher{
				HTTP: smartyhttp.NewFetcher(
					smartyhttp.WithTimeout(c.Timeout),
					smartyhttp.WithRateLimit(c.RateLimit),
				),
				Man:   &smartyexec.ManPages{Timeout: c.Timeout},
				GoDoc: &smartyexec.GoDocTool{Timeout: c.Timeout},
			},
			Converter: &convert.Converter{
				HTML: htmltomarkdown.NewConverter(),
				Man:  pandoc.NewManConverter(),
			},
			Titles: goquery.NewTitler(),
			Store:  fs.NewTopicStore(),
		}
		learner = smartyslog.NewLoggingLearner(inner, deps.Logger)
	}

	bootstrap := deps.Bootstrap
	if bootstrap == nil {
		bootstrap = &git.Bootstrap{}
	}

	return mcp.ServeStdio(mcp.New(learner, bootstrap))
}

// InstallCmd groups the settings-file editing commands.
type InstallCmd struct {
	MCP   InstallMCPCmd   `cmd:"" name:"mcp" help:"Install the MCP server into a settings.json file (Claude Desktop or VS Code format)."`
	Rules InstallRulesCmd `cmd:"" help:"Install agent rules into a rules file (e.g. CLAUDE.md, .cursorrules)."`
}

// InstallMCPCmd inserts the MCP server block into a settings file.
type InstallMCPCmd struct {
	SettingsFile string `arg:"" help:"Path to the settings.json file."`
}

func (c *InstallMCPCmd) Run(deps *Dependencies) error {
	return deps.installer().InstallMCP(c.SettingsFile)
}

// InstallRulesCmd appends the manifest rule to a rules file.
type InstallRulesCmd struct {
	RulesFile string `arg:"" help:"Path to the rules file."`
}

func (c *InstallRulesCmd) Run(deps *Dependencies) error {
	return deps.installer().InstallRules(c.RulesFile)
}

func (d *Dependencies) installer() *install.Installer {
	prompter := d.Prompter
	if prompter == nil {
		prompter = &stdinPrompter{in: bufio.NewReader(d.Stdin), out: d.Stdout}
	}
	return &install.Installer{Prompter: prompter, Stdout: d.Stdout}
}

// stdinPrompter confirms destructive actions on the terminal.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *stdinPrompter) Confirm(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
