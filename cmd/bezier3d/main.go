// Command bezier3d transforms and samples a 3D cubic Bézier curve and
// renders it to a PNG, prints the samples, dumps the GPU draw list, or runs
// an interactive terminal editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/gpu"
	"github.com/gogpu/bezier3d/internal/config"
	"github.com/gogpu/bezier3d/internal/editor"
	"github.com/gogpu/bezier3d/internal/logging"
	"github.com/gogpu/bezier3d/internal/tui"
	"github.com/gogpu/bezier3d/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("bezier3d: %v", err)
	}
}

type options struct {
	configPath string
	interact   bool
	print      bool
	shader     bool
	workers    int
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bezier3d", flag.ContinueOnError)
	var (
		opts    options
		output  = fs.String("output", "", "output PNG file (default from config)")
		samples = fs.Int("samples", 0, "number of curve samples (default from config)")
		width   = fs.Int("width", 0, "image width (default from config)")
		height  = fs.Int("height", 0, "image height (default from config)")
	)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.BoolVar(&opts.interact, "tui", false, "run the interactive terminal editor")
	fs.BoolVar(&opts.print, "print", false, "print the sampled points instead of rendering")
	fs.BoolVar(&opts.shader, "shader", false, "compile the GPU shader and print the draw list")
	fs.IntVar(&opts.workers, "workers", 1, "evaluate samples with this many workers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	// Explicit flags win over the config file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "samples":
			cfg.Samples = *samples
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Configure(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	switch {
	case opts.interact:
		return runTUI(ctx, cfg)
	case opts.shader:
		return runShader(ctx, cfg, opts.workers, stdout)
	case opts.print:
		return runPrint(ctx, cfg, opts.workers, stdout)
	}

	frame, err := buildFrame(ctx, cfg, opts.workers)
	if err != nil {
		return err
	}
	style := render.DefaultStyle()
	style.Supersample = cfg.Supersample
	r, err := render.NewRenderer(style)
	if err != nil {
		return err
	}
	defer r.Close()

	img, err := r.Render(frame, cfg.NewCamera(), cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if err := render.SavePNG(cfg.Output, img); err != nil {
		return err
	}
	logger.Info("curve saved", "output", cfg.Output, "width", cfg.Width, "height", cfg.Height, "samples", cfg.Samples)
	return nil
}

// buildFrame transforms the configured control points and samples the
// curve, in parallel when workers > 1.
func buildFrame(ctx context.Context, cfg config.Config, workers int) (render.Frame, error) {
	pts, err := cfg.Points()
	if err != nil {
		return render.Frame{}, err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return render.Frame{}, err
	}
	if workers <= 1 {
		return render.NewFrame(pts, params, cfg.Samples)
	}

	transformed, err := bezier3d.TransformAll(pts, params)
	if err != nil {
		return render.Frame{}, err
	}
	samples, err := bezier3d.EvaluateParallel(ctx, transformed.Slice(), cfg.Samples, workers)
	if err != nil {
		return render.Frame{}, err
	}
	return render.Frame{Control: transformed, Samples: samples}, nil
}

func runPrint(ctx context.Context, cfg config.Config, workers int, stdout io.Writer) error {
	frame, err := buildFrame(ctx, cfg, workers)
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	curve := frame.Control.Curve()
	fmt.Fprintln(tw, "i\tt\tx\ty\tz\tdx\tdy\tdz\t")
	for i, s := range frame.Samples {
		t := bezier3d.ParameterAt(i, len(frame.Samples))
		d := curve.Tangent(t)
		p.Fprintf(tw, "%d\t%.4f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t\n", i, t, s.X, s.Y, s.Z, d.X, d.Y, d.Z)
	}
	return tw.Flush()
}

func runShader(ctx context.Context, cfg config.Config, workers int, stdout io.Writer) error {
	code, err := gpu.CompileShader()
	if err != nil {
		return err
	}
	frame, err := buildFrame(ctx, cfg, workers)
	if err != nil {
		return err
	}
	list := gpu.BuildDrawList(frame, cfg.NewCamera(), render.DefaultStyle())

	fmt.Fprintf(stdout, "shader: %d SPIR-V words (%s, %s)\n", len(code), gpu.VertexEntryPoint, gpu.FragmentEntryPoint)
	for _, b := range list.Batches {
		fmt.Fprintf(stdout, "batch %-8s %-10v %4d vertices %5d bytes\n", b.Label, b.Topology, b.VertexCount, len(b.Vertices))
	}
	fmt.Fprintf(stdout, "uniforms: %d bytes per batch\n", gpu.UniformSize)
	return nil
}

func runTUI(ctx context.Context, cfg config.Config) error {
	pts, err := cfg.Points()
	if err != nil {
		return err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	ed, err := editor.New(pts, params, cfg.Samples)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	// The terminal owns stderr while the editor runs.
	bezier3d.SetLogger(nil)
	return ignoreCanceled(tui.New(screen, ed, cfg.NewCamera()).Run(ctx))
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
