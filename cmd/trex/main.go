package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/trex/internal/api"
	"github.com/mobil-koeln/trex/internal/config"
	"github.com/mobil-koeln/trex/internal/output"
	"github.com/mobil-koeln/trex/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := newApp().execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries the settings shared by all subcommands.
type app struct {
	root    *cobra.Command
	cfg     config.Config
	json    bool
	yaml    bool
	rawJSON bool
	logFile io.Closer
}

func newApp() *app {
	a := &app{}
	a.root = newRootCmd(a)
	return a
}

// execute runs the command line and closes the debug log, also after a
// failed run.
func (a *app) execute() error {
	defer a.closeLog()
	return a.root.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "trex",
		Short: "Terminal explorer for Trassenfinder railway infrastructure",
		Long: `trex browses the railway infrastructure published by the
Trassenfinder web API: operating points (Betriebsstellen), the track
segments (Streckensegmente) between them, and a map of both.

Quick Start:
  1. Launch TUI:                   trex (or trex tui)
  2. List infrastructures:         trex list
  3. Show operating points:        trex stations <id>
  4. Show track segments:          trex segments <id>
  5. Show counts and extent:       trex info <id>
  6. Save a resolved graph:        trex export <id> -o netz.yaml

Settings are read from flags, TREX_* environment variables and
$XDG_CONFIG_HOME/trex/config.yaml, in that order.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Args:              cobra.NoArgs,
		RunE:              a.runTUI,
	}

	pf := root.PersistentFlags()
	pf.String("api-url", api.BaseURL, "Trassenfinder API root")
	pf.Duration("timeout", 10*time.Second, "HTTP timeout per request")
	pf.String("color", config.ColorAuto, "Color output: auto, always, never")
	pf.String("debug-log", "", "Append debug log to this file")
	pf.BoolVar(&a.json, "json", false, "Output as JSON")
	pf.BoolVar(&a.yaml, "yaml", false, "Output as YAML")
	pf.BoolVar(&a.rawJSON, "raw-json", false, "Output raw API response")
	root.MarkFlagsMutuallyExclusive("json", "yaml", "raw-json")

	root.AddCommand(
		newTUICmd(a),
		newListCmd(a),
		newStationsCmd(a),
		newSegmentsCmd(a),
		newInfoCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup loads the configuration and routes the log package.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.DebugLog == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(cfg.DebugLog, "trex")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	a.logFile = f
	log.Printf("trex %s, api %s, timeout %s", version, cfg.APIURL, cfg.Timeout)
	return nil
}

func (a *app) closeLog() {
	if a.logFile == nil {
		return
	}
	log.SetOutput(io.Discard)
	_ = a.logFile.Close()
	a.logFile = nil
}

// client creates an API client from the loaded configuration
func (a *app) client() (*api.Client, error) {
	client, err := api.NewClient(
		api.WithBaseURL(a.cfg.APIURL),
		api.WithTimeout(a.cfg.Timeout),
		api.WithUserAgent("trex/"+version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client, nil
}

// format returns the machine-readable format requested by flags
func (a *app) format() output.Format {
	switch {
	case a.json:
		return output.FormatJSON
	case a.yaml:
		return output.FormatYAML
	}
	return output.FormatText
}

func (a *app) tableOptions() output.TableOptions {
	return output.TableOptions{Colors: output.NewColors(output.ParseColorMode(a.cfg.Color))}
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive full-screen TUI",
		Long: `Launch an interactive full-screen terminal UI. Pick an
infrastructure, then browse its operating points and track segments
next to a map.

Keyboard:
  j/k or arrows  Navigate lists
  Enter          Open the highlighted infrastructure
  b              Focus operating points (Betriebsstellen)
  s              Focus track segments (Streckensegmente)
  Esc            Back to the infrastructure list
  q              Quit`,
		Args: cobra.NoArgs,
		RunE: a.runTUI,
	}
}

func (a *app) runTUI(_ *cobra.Command, _ []string) error {
	client, err := a.client()
	if err != nil {
		return err
	}

	model := tui.New(client)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// parseID parses an infrastructure id argument
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, api.ErrInvalidValue("id", arg)
	}
	return id, nil
}
