package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mobil-koeln/trex/internal/models"
	"github.com/mobil-koeln/trex/internal/output"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List published infrastructures",
		Long: `List all infrastructures published by the API, sorted by id.

Examples:
  trex list
  trex list --json`,
		Args: cobra.NoArgs,
		RunE: a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	client, err := a.client()
	if err != nil {
		return err
	}

	if a.rawJSON {
		raw, err := client.ListInfrastructuresRaw(ctx)
		if err != nil {
			return err
		}
		return output.PrettyJSON(out, raw)
	}

	summaries, err := client.ListInfrastructures(ctx)
	if err != nil {
		return err
	}

	if f := a.format(); f != output.FormatText {
		return output.Encode(out, f, summaries)
	}
	output.RenderInfrastructures(out, summaries, a.tableOptions())
	return nil
}

func newStationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stations <id>",
		Short: "Show the operating points of an infrastructure",
		Long: `Show the operating points (Betriebsstellen) of one infrastructure
with their DS100 code, coordinates and name.

Examples:
  trex stations 17
  trex stations 17 --yaml`,
		Args: cobra.ExactArgs(1),
		RunE: a.graphCommand(func(w io.Writer, g *models.StationGraph, f output.Format) error {
			if f != output.FormatText {
				return output.Encode(w, f, g.Stations)
			}
			output.RenderStations(w, g, a.tableOptions())
			return nil
		}),
	}
}

func newSegmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segments <id>",
		Short: "Show the track segments of an infrastructure",
		Long: `Show the track segments (Streckensegmente) of one infrastructure
with their route number and end points.

Examples:
  trex segments 17
  trex segments 17 --json`,
		Args: cobra.ExactArgs(1),
		RunE: a.graphCommand(func(w io.Writer, g *models.StationGraph, f output.Format) error {
			if f != output.FormatText {
				return output.Encode(w, f, g.Segments)
			}
			output.RenderSegments(w, g, a.tableOptions())
			return nil
		}),
	}
}

// graphInfo is the machine-readable form of trex info
type graphInfo struct {
	ID       uint64         `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Stations int            `json:"stations" yaml:"stations"`
	Segments int            `json:"segments" yaml:"segments"`
	Extent   *models.Extent `json:"extent,omitempty" yaml:"extent,omitempty"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show counts and bounding box of an infrastructure",
		Args:  cobra.ExactArgs(1),
		RunE: a.graphCommand(func(w io.Writer, g *models.StationGraph, f output.Format) error {
			if f == output.FormatText {
				output.RenderGraphSummary(w, g, a.tableOptions())
				return nil
			}
			info := graphInfo{
				ID:       g.ID,
				Name:     g.Name,
				Stations: len(g.Stations),
				Segments: len(g.Segments),
			}
			if len(g.Stations) > 0 {
				e := models.CalcExtent(g.Coordinates())
				info.Extent = &e
			}
			return output.Encode(w, f, info)
		}),
	}
}

func newExportCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a resolved infrastructure graph as YAML or JSON",
		Long: `Load an infrastructure, resolve every segment against its
operating points and write the result. The output is YAML unless --json
is given; --raw-json writes the unresolved API document instead.

Examples:
  trex export 17 > netz.yaml
  trex export 17 --json -o netz.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return a.renderGraph(cmd.OutOrStdout(), args[0], exportGraph)
			}

			// Encode first so a failed load leaves an existing file alone
			var buf bytes.Buffer
			if err := a.renderGraph(&buf, args[0], exportGraph); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// exportGraph encodes a resolved graph, YAML unless JSON was asked for.
func exportGraph(w io.Writer, g *models.StationGraph, f output.Format) error {
	if f == output.FormatText {
		f = output.FormatYAML
	}
	return output.Encode(w, f, g)
}

// graphRenderer writes a loaded graph in the requested format.
type graphRenderer func(io.Writer, *models.StationGraph, output.Format) error

// graphCommand wraps a renderer into a RunE that loads the infrastructure
// named by the first argument.
func (a *app) graphCommand(render graphRenderer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return a.renderGraph(cmd.OutOrStdout(), args[0], render)
	}
}

// renderGraph loads the infrastructure with id arg and renders it to out.
// --raw-json bypasses the renderer.
func (a *app) renderGraph(out io.Writer, arg string, render graphRenderer) error {
	ctx := context.Background()

	id, err := parseID(arg)
	if err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}

	if a.rawJSON {
		raw, err := client.GetInfrastructureRaw(ctx, id)
		if err != nil {
			return err
		}
		return output.PrettyJSON(out, raw)
	}

	graph, err := client.GetInfrastructure(ctx, id)
	if err != nil {
		return err
	}
	return render(out, graph, a.format())
}
