package tileset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/logger"
	"github.com/dyfios/webverse-worldengine/internal/terrain"
)

// loadHeightmap resolves a heightmap reference into a grid. Plain paths are
// read relative to baseDir; anything with a URL scheme is fetched to a temp
// file with go-getter first (http, git, s3, ...).
func loadHeightmap(ref, baseDir string, lo, hi float32) (*terrain.Grid, error) {
	path := ref
	if isRemote(ref) {
		tmp, err := os.MkdirTemp("", "worldengine-heightmap")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(tmp)

		path = filepath.Join(tmp, "heightmap.png")
		logger.Debug("fetching heightmap", zap.String("source", ref))
		if err := getter.GetFile(path, ref); err != nil {
			return nil, fmt.Errorf("fetching heightmap %s: %w", ref, err)
		}
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heightmap %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", path, err)
	}

	return gridFromImage(img, lo, hi), nil
}

func isRemote(ref string) bool {
	return strings.Contains(ref, "://")
}

// gridFromImage maps grayscale pixels onto heights in [lo, hi]. Image x maps
// to the grid's X axis, image y to Z. 16-bit grays keep their full range.
func gridFromImage(img image.Image, lo, hi float32) *terrain.Grid {
	bounds := img.Bounds()
	g := terrain.NewGrid(bounds.Dx(), bounds.Dy())

	for x := 0; x < bounds.Dx(); x++ {
		for y := 0; y < bounds.Dy(); y++ {
			c := color.Gray16Model.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray16)
			t := float32(c.Y) / 65535
			g.Set(x, y, lo+t*(hi-lo))
		}
	}
	return g
}
