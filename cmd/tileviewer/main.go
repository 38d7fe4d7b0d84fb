// Package main is the tile viewer: it loads a tileset, stitches it and
// renders the tiles with OpenGL so seams can be inspected visually.
package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/config"
	"github.com/dyfios/webverse-worldengine/internal/engine/camera"
	"github.com/dyfios/webverse-worldengine/internal/engine/mesh"
	"github.com/dyfios/webverse-worldengine/internal/engine/shader"
	"github.com/dyfios/webverse-worldengine/internal/engine/window"
	"github.com/dyfios/webverse-worldengine/internal/logger"
	"github.com/dyfios/webverse-worldengine/internal/tileset"
	"github.com/dyfios/webverse-worldengine/internal/world"
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

var flagTileset = flag.String("tileset", "", "Path to tileset YAML (required)")

// tileColors cycles per tile so neighboring tiles are distinguishable.
var tileColors = [][3]float32{
	{0.45, 0.65, 0.35},
	{0.40, 0.55, 0.70},
	{0.70, 0.60, 0.35},
	{0.60, 0.45, 0.60},
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagTileset == "" {
		fmt.Fprintln(os.Stderr, "Usage: tileviewer -tileset <file>")
		os.Exit(2)
	}

	if err := run(cfg, *flagTileset); err != nil {
		logger.Error("tileviewer failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, tilesetPath string) error {
	ts, err := tileset.Load(tilesetPath)
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(tilesetPath)

	win, err := window.New(window.Config{
		Title:  "WorldEngine Tile Viewer",
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	prog, err := shader.Compile(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return fmt.Errorf("terrain shader: %w", err)
	}
	defer prog.Destroy()

	mgr := world.NewManager(cfg.Terrain.StitchTolerance)
	var surfaces []*mesh.GL

	for idx, spec := range ts.Tiles {
		grid, err := spec.Grid(baseDir)
		if err != nil {
			return fmt.Errorf("tile %d (%s): %w", idx, spec.Name, err)
		}

		pos := vmath.Vec3{X: spec.Position[0], Y: spec.Position[1], Z: spec.Position[2]}
		surface := mesh.NewGL(pos, vmath.Vec3{X: spec.SpanX, Y: spec.HeightScale, Z: spec.SpanZ})

		stitch := spec.Stitch && cfg.Terrain.StitchOnCreate
		if _, err := mgr.CreateTile(surface, pos, spec.SpanX, spec.SpanZ, spec.HeightScale, grid, stitch); err != nil {
			return fmt.Errorf("tile %d (%s): %w", idx, spec.Name, err)
		}
		surfaces = append(surfaces, surface)
	}
	mgr.StitchAll()
	defer func() {
		for _, s := range surfaces {
			s.Destroy()
		}
	}()

	cam := setupCamera(mgr)
	locViewProj := prog.Uniform("uViewProj")
	locLightDir := prog.Uniform("uLightDir")
	locColor := prog.Uniform("uColor")

	logger.Info("viewer running", zap.Int("tiles", mgr.Len()))

	dragging := false
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.MouseButtonEvent:
				if ev.Button == sdl.BUTTON_LEFT {
					dragging = ev.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					cam.Drag(float32(ev.XRel), float32(ev.YRel))
				}
			case *sdl.MouseWheelEvent:
				cam.Zoom(float32(ev.Y))
			}
		}

		width, height := win.Size()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.1, 0.12, 0.15, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		proj := vmath.Perspective(float32(gomath.Pi/4), float32(width)/float32(height), 0.1, 20000)
		viewProj := proj.Mul(cam.ViewMatrix())

		prog.Use()
		gl.UniformMatrix4fv(locViewProj, 1, false, viewProj.Ptr())
		gl.Uniform3f(locLightDir, -0.4, -1, -0.3)

		for idx, s := range surfaces {
			if s.Dirty() {
				s.Upload()
			}
			c := tileColors[idx%len(tileColors)]
			gl.Uniform3f(locColor, c[0], c[1], c[2])
			s.Draw(cfg.Viewer.Wireframe)
		}

		win.SwapBuffers()
	}
}

// setupCamera centers the orbit on the loaded tiles and backs off far enough
// to see them all.
func setupCamera(mgr *world.Manager) *camera.Orbit {
	tiles := mgr.Tiles()
	if len(tiles) == 0 {
		return camera.NewOrbit(vmath.Vec3{}, 100)
	}

	var center vmath.Vec3
	var maxSpan float32
	for _, t := range tiles {
		geom := t.Geometry()
		center = center.Add(geom.Center())
		if geom.Size.X > maxSpan {
			maxSpan = geom.Size.X
		}
		if geom.Size.Z > maxSpan {
			maxSpan = geom.Size.Z
		}
	}
	center = center.Scale(1 / float32(len(tiles)))

	return camera.NewOrbit(center, maxSpan*float32(len(tiles)))
}
