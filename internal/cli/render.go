package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zxkit/zxgraph/pkg/cache"
	"github.com/zxkit/zxgraph/pkg/qgraph"
	"github.com/zxkit/zxgraph/pkg/render/nodelink"
)

// artifactTTL is how long rendered artifacts stay cached.
const artifactTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
// Defaults come from the config file (~/.config/zxgraph/config.toml).
type renderOpts struct {
	output      string  // output file path (derived from input if empty)
	format      string  // output format: "svg", "png", "pdf", "dot"
	labels      bool    // show external vertex names in node labels
	fixedLayout bool    // pin nodes to their stored coordinates
	scale       float64 // raster scale factor (png only)
	noCache     bool    // bypass the artifact cache
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "dot": true}

// newRenderCmd creates the render command for generating diagram images.
func newRenderCmd() *cobra.Command {
	cfg, cfgErr := loadConfig()
	opts := renderOpts{
		format:      cfg.Render.Format,
		labels:      cfg.Render.Labels,
		fixedLayout: cfg.Render.FixedLayout,
		scale:       cfg.Render.Scale,
		noCache:     cfg.Render.NoCache,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram to SVG, PNG, PDF or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', or 'dot')", opts.format)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, pdf, dot")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "show vertex names in labels")
	cmd.Flags().BoolVar(&opts.fixedLayout, "fixed-layout", opts.fixedLayout, "pin nodes to stored coordinates")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor (png)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "bypass the artifact cache")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.ArtifactKey(keyer.DocumentKey(raw), cache.ArtifactKeyOpts{
		Format:      opts.format,
		Labels:      opts.labels,
		FixedLayout: opts.fixedLayout,
		Scale:       opts.scale,
	})

	data, hit, err := store.Get(ctx, key)
	if err != nil {
		logger.Warnf("Cache read failed: %v", err)
	}

	var vertices, edges int
	if !hit {
		g, err := qgraph.Decode(raw)
		if err != nil {
			return err
		}
		vertices, edges = g.NumVertices(), g.NumEdges()
		logger.Debugf("Loaded diagram: %d vertices, %d edges", vertices, edges)

		dot, err := nodelink.ToDOT(g, nodelink.Options{
			Labels:      opts.labels,
			FixedLayout: opts.fixedLayout,
		})
		if err != nil {
			return err
		}

		spin := startSpinner(ctx, fmt.Sprintf("Rendering %s", opts.format))
		data, err = renderFormat(dot, opts)
		spin.stop()
		if err != nil {
			return err
		}

		if err := store.Set(ctx, key, data, artifactTTL); err != nil {
			logger.Warnf("Cache write failed: %v", err)
		}
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Rendered %s", outputPath))
	printSuccess("Rendered %s", input)
	printFile(outputPath)
	printStats(vertices, edges, hit)
	return nil
}

// renderFormat converts DOT source to the requested output format.
func renderFormat(dot string, opts *renderOpts) ([]byte, error) {
	switch opts.format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return nodelink.RenderSVG(dot)
	case "pdf":
		return nodelink.RenderPDF(dot)
	case "png":
		return nodelink.RenderPNG(dot, opts.scale)
	default:
		return nil, fmt.Errorf("unknown format: %s", opts.format)
	}
}
