// Command gen renders scroll views in representative states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scroll view screenshot to capture.
type screenshot struct {
	name   string                              // filename without extension
	width  int                                 // viewport width
	height int                                 // viewport height
	config func() scrollview.Config            // view config
	items  int                                 // item count
	setup  func(v *scrollview.View[int]) error // drives the view before capture
	frames int                                 // frames to simulate (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)

	cells := &opengl.RectCells{}
	view, err := scrollview.New(cells.New,
		scrollview.WithConfig(s.config()),
		scrollview.WithViewportSize(scrollview.Vec2{X: float32(s.width), Y: float32(s.height)}),
	)
	if err != nil {
		return err
	}
	items := make([]int, s.items)
	for i := range items {
		items[i] = i
	}
	view.SetItems(items)
	if s.setup != nil {
		if err := s.setup(view); err != nil {
			return err
		}
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for range frames {
		view.Update(1.0 / 60.0)
	}
	if err := view.Err(); err != nil {
		return err
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := opengl.AcquireDrawList()
	cells.Draw(dl, view, scrollview.Vec2{})
	err = renderer.Render(dl)
	opengl.ReleaseDrawList(dl)
	if err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	padded := func() scrollview.Config {
		cfg := scrollview.DefaultConfig()
		cfg.CellSize = 48
		cfg.Spacing = 4
		cfg.PaddingHead = 12
		cfg.PaddingTail = 12
		cfg.Snap.Enabled = false
		return cfg
	}

	return []screenshot{
		{
			name: "basic", width: 240, height: 400, items: 50,
			config: scrollview.DefaultConfig,
			setup:  func(v *scrollview.View[int]) error { return v.JumpTo(12) },
		},
		{
			name: "basic_loop", width: 240, height: 400, items: 6,
			config: func() scrollview.Config {
				cfg := scrollview.DefaultConfig()
				cfg.Loop = true
				cfg.MovementType = scrollview.Unrestricted
				return cfg
			},
		},
		{
			name: "horizontal", width: 480, height: 120, items: 30,
			config: func() scrollview.Config {
				cfg := scrollview.DefaultConfig()
				cfg.Direction = scrollview.Horizontal
				cfg.CellInterval = 0.125
				return cfg
			},
			setup: func(v *scrollview.View[int]) error { return v.JumpTo(7) },
		},
		{
			name: "padded", width: 240, height: 400, items: 40,
			config: padded,
			setup:  func(v *scrollview.View[int]) error { return v.JumpTo(20, scrollview.WithAlignment(0.5)) },
		},
		{
			name: "padded_overscroll", width: 240, height: 400, items: 40,
			config: padded,
			setup: func(v *scrollview.View[int]) error {
				v.Scroller().SetPosition(-0.6)
				return nil
			},
			frames: 1,
		},
		{
			name: "scroll_to_midway", width: 240, height: 400, items: 100,
			config: scrollview.DefaultConfig,
			setup: func(v *scrollview.View[int]) error {
				return v.ScrollTo(40, 1, scrollview.WithEase(scrollview.InOutCubic))
			},
			frames: 30,
		},
	}
}
