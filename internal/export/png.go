package export

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/piwi3910/LoadCut/internal/model"
)

// DefaultPreviewSize is the long edge of PNG previews in pixels.
const DefaultPreviewSize = 800

var (
	floorColor  = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	borderColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// heightShade maps a box top to a grey level: 60 on the floor up to 255 at
// the container roof.
func heightShade(top, roof float64) color.NRGBA {
	f := 0.0
	if roof > 0 {
		f = math.Max(0, math.Min(1, top/roof))
	}
	v := uint8(60 + math.Round(195*f))
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// RenderHeightmap draws the load seen from above. Each pixel shows the
// highest box top over it; brighter is taller. The long container edge is
// scaled to size pixels, with x across and z down the image.
func RenderHeightmap(result model.LoadResult, size int) (*image.NRGBA, error) {
	c := result.Container
	if c.Width <= 0 || c.Depth <= 0 {
		return nil, fmt.Errorf("container has no floor area")
	}
	if size <= 0 {
		size = DefaultPreviewSize
	}
	scale := float64(size) / math.Max(c.Width, c.Depth)
	px := func(v float64) int { return int(math.Round(v * scale)) }

	canvas := imaging.New(max(px(c.Width), 1), max(px(c.Depth), 1), floorColor)

	placements := make([]model.Placement, len(result.Placements))
	copy(placements, result.Placements)
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Top() < placements[j].Top()
	})

	for _, p := range placements {
		x0, z0 := px(p.X), px(p.Z)
		w, h := px(p.X+p.Width)-x0, px(p.Z+p.Depth)-z0
		if w <= 0 || h <= 0 {
			continue
		}
		tile := imaging.New(w, h, borderColor)
		if w > 2 && h > 2 {
			inner := imaging.New(w-2, h-2, heightShade(p.Top(), c.Height))
			tile = imaging.Paste(tile, inner, image.Pt(1, 1))
		}
		canvas = imaging.Paste(canvas, tile, image.Pt(x0, z0))
	}
	return canvas, nil
}

// ExportPNG writes the heightmap preview to path.
func ExportPNG(path string, result model.LoadResult, size int) error {
	img, err := RenderHeightmap(result, size)
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}
