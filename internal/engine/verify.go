package engine

import (
	"fmt"

	"github.com/piwi3910/LoadCut/internal/geom"
	"github.com/piwi3910/LoadCut/internal/model"
)

// CheckPlan audits a load plan against the rules the planner enforces:
// every box inside the usable region, boxes kept apart by the spacing, and
// every box standing on the floor or resting on boxes that cover more than
// the support threshold of its footprint.
//
// Plans produced by Plan always pass; the check exists for plans that were
// loaded from disk or edited by hand.
func CheckPlan(result model.LoadResult, settings model.PackSettings) []model.PlanViolation {
	cell := NewCell(Envelope(result.Container), settings)

	boxes := make([]geom.Placed, 0, len(result.Placements))
	var violations []model.PlanViolation

	for i, pl := range result.Placements {
		if !geom.Orientation(pl.Orientation).Valid() {
			violations = append(violations, model.PlanViolation{
				Kind:   model.ViolationInvalid,
				Index:  i,
				Other:  -1,
				Label:  pl.Item.Label,
				Detail: fmt.Sprintf("invalid orientation %d", pl.Orientation),
			})
			boxes = append(boxes, geom.Placed{})
			continue
		}
		boxes = append(boxes, placedBox(pl))
	}

	for i, b := range boxes {
		pl := result.Placements[i]
		if !geom.Orientation(pl.Orientation).Valid() {
			continue
		}

		if !cell.Fits(b) {
			violations = append(violations, model.PlanViolation{
				Kind:   model.ViolationOutside,
				Index:  i,
				Other:  -1,
				Label:  pl.Item.Label,
				Detail: fmt.Sprintf("box at (%.1f, %.1f, %.1f) leaves the usable region", pl.X, pl.Y, pl.Z),
			})
		}

		clearance := b.GrowXZ(settings.Spacing)
		for j := i + 1; j < len(boxes); j++ {
			if !geom.Orientation(result.Placements[j].Orientation).Valid() {
				continue
			}
			if geom.Overlaps(clearance, boxes[j]) {
				violations = append(violations, model.PlanViolation{
					Kind:   model.ViolationOverlap,
					Index:  i,
					Other:  j,
					Label:  pl.Item.Label,
					Detail: fmt.Sprintf("intersects %q", result.Placements[j].Item.Label),
				})
			}
		}

		if b.Bottom() == cell.Floor() {
			continue
		}
		frac := supportFraction(b, boxes, i)
		if frac <= settings.SupportThreshold {
			violations = append(violations, model.PlanViolation{
				Kind:   model.ViolationUnsupported,
				Index:  i,
				Other:  -1,
				Label:  pl.Item.Label,
				Detail: fmt.Sprintf("only %.0f%% of the base is supported", frac*100),
			})
		}
	}

	return violations
}

// supportFraction returns the share of b's footprint resting on the tops of
// the other boxes. The box at index self is skipped.
func supportFraction(b geom.Placed, boxes []geom.Placed, self int) float64 {
	base := b.Base().Area()
	if base == 0 {
		return 0
	}
	bottom := b.Bottom()
	var contact float64
	for j, other := range boxes {
		if j == self || other.Top() != bottom {
			continue
		}
		if face, ok := geom.Intersect(other, b); ok {
			contact += face.Base().Area()
		}
	}
	return contact / base
}

// FormatViolations produces human-readable warning messages from audit results.
func FormatViolations(violations []model.PlanViolation) []string {
	var warnings []string
	for _, v := range violations {
		warnings = append(warnings, fmt.Sprintf("Box %d (%s): %s: %s", v.Index+1, v.Label, v.Kind, v.Detail))
	}
	return warnings
}
