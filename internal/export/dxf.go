package export

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/LoadCut/internal/model"
)

// ContainerLayer holds the container outline in DXF exports.
const ContainerLayer = "CONTAINER"

// cuboid is an axis-aligned box given by its minimum corner and extents.
type cuboid struct {
	x, y, z, w, h, d float64
}

// edges returns the twelve edges of the cuboid as start/end pairs.
func (c cuboid) edges() [12][2][3]float64 {
	x0, y0, z0 := c.x, c.y, c.z
	x1, y1, z1 := c.x+c.w, c.y+c.h, c.z+c.d
	v := [8][3]float64{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}, // bottom
		{x0, y1, z0}, {x1, y1, z0}, {x1, y1, z1}, {x0, y1, z1}, // top
	}
	return [12][2][3]float64{
		{v[0], v[1]}, {v[1], v[2]}, {v[2], v[3]}, {v[3], v[0]},
		{v[4], v[5]}, {v[5], v[6]}, {v[6], v[7]}, {v[7], v[4]},
		{v[0], v[4]}, {v[1], v[5]}, {v[2], v[6]}, {v[3], v[7]},
	}
}

// BoxLayerName returns the DXF layer used for the i-th placement.
func BoxLayerName(i int, label string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(label) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return fmt.Sprintf("BOX_%03d_%s", i+1, b.String())
}

// ExportDXF writes a 3D wireframe of the load: the container on its own
// layer and each placed box on a layer of its own. DXF is z-up, so the
// vertical axis of the plan is written as DXF z.
func ExportDXF(path string, result model.LoadResult) error {
	c := result.Container
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return fmt.Errorf("container has no volume")
	}

	d := dxf.NewDrawing()
	d.Header().LtScale = 100.0

	if _, err := d.AddLayer(ContainerLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	if err := drawCuboid(d, cuboid{w: c.Width, h: c.Height, d: c.Depth}); err != nil {
		return err
	}

	for i, p := range result.Placements {
		layer := BoxLayerName(i, p.Item.Label)
		col := color.ColorNumber(1 + i%6)
		if _, err := d.AddLayer(layer, col, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("layer %s: %w", layer, err)
		}
		if err := drawCuboid(d, cuboid{x: p.X, y: p.Y, z: p.Z, w: p.Width, h: p.Height, d: p.Depth}); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}

type lineDrawer interface {
	Line(x1, y1, z1, x2, y2, z2 float64) (*entity.Line, error)
}

func drawCuboid(d lineDrawer, c cuboid) error {
	for _, e := range c.edges() {
		// plan (x, y up, z) -> DXF (x, z, y up)
		if _, err := d.Line(e[0][0], e[0][2], e[0][1], e[1][0], e[1][2], e[1][1]); err != nil {
			return err
		}
	}
	return nil
}
