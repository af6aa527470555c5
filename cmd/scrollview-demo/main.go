// Command scrollview-demo shows a virtualized list of coloured bars that can
// be dragged, flicked and wheel-scrolled.
//
// Prerequisites:
//
//	devbox shell                          # provides Go + OpenGL/X11 headers
//	go run ./cmd/scrollview-demo --items 500 --loop
//	go run ./cmd/scrollview-demo --config list.yaml --watch --metrics-addr :9090
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 640
	windowTitle  = "scrollview demo"
	margin       = 40
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type demoOptions struct {
	configPath  string
	items       int
	loop        bool
	watch       bool
	metricsAddr string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:           "scrollview-demo",
		Short:         "Interactive demo of the scrollview engine",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch && opts.configPath == "" {
				return errors.New("--watch requires --config")
			}
			scrollview.SetVerbose(opts.verbose)
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&opts.items, "items", 100, "number of items")
	cmd.Flags().BoolVar(&opts.loop, "loop", false, "wrap around at both ends")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload --config when it changes")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, opts demoOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := scrollview.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := scrollview.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.loop {
		cfg.Loop = true
		cfg.MovementType = scrollview.Unrestricted
	}

	var metrics *scrollview.Metrics
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = scrollview.NewMetrics(reg)
		srv := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Close()
	}

	var reloads <-chan scrollview.Config
	if opts.watch {
		ch, err := watchConfig(ctx, opts.configPath, logger)
		if err != nil {
			return err
		}
		reloads = ch
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	origin := scrollview.Vec2{X: margin, Y: margin}
	input.SetViewportOrigin(origin)

	cells := &opengl.RectCells{}
	view, err := scrollview.New(cells.New,
		scrollview.WithConfig(cfg),
		scrollview.WithViewportSize(viewportSize(windowWidth, windowHeight)),
		scrollview.WithMetrics(metrics),
		scrollview.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}
	view.OnSelectionChanged(func(index int, dir scrollview.MovementDirection) {
		logger.Debug("selected", "index", index, "direction", dir)
	})

	items := make([]int, opts.items)
	for i := range items {
		items[i] = i
	}
	view.SetItems(items)

	last := glfw.GetTime()
	lastW, lastH := windowWidth, windowHeight
	for !window.ShouldClose() {
		glfw.PollEvents()

		select {
		case next, ok := <-reloads:
			if ok {
				if opts.loop {
					next.Loop = true
					next.MovementType = scrollview.Unrestricted
				}
				if err := view.SetConfig(next); err != nil {
					logger.Warn("config rejected", "error", err)
				}
			}
		default:
		}

		w, h := window.GetFramebufferSize()
		if w != lastW || h != lastH {
			lastW, lastH = w, h
			renderer.Resize(w, h)
			view.SetViewportSize(viewportSize(w, h))
		}

		now := glfw.GetTime()
		input.Dispatch(view)
		view.Update(now - last)
		last = now
		if err := view.Err(); err != nil {
			return fmt.Errorf("scroll view: %w", err)
		}

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := opengl.AcquireDrawList()
		cells.Draw(dl, view, origin)
		err := renderer.Render(dl)
		opengl.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}

func viewportSize(w, h int) scrollview.Vec2 {
	return scrollview.Vec2{X: float32(w - 2*margin), Y: float32(h - 2*margin)}
}
