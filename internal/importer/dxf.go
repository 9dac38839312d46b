package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/cladplan/cladplan/internal/model"
)

// DXFResult holds a wall surface and its openings traced from a drawing.
type DXFResult struct {
	Wall     model.WallSurface
	Openings []model.ExclusionZone
	Errors   []string
	Warnings []string
}

// point is a 2D drawing coordinate.
type point struct {
	X, Y float64
}

// outline is a closed polygon in drawing coordinates.
type outline []point

// segment is one straight edge waiting to be chained into an outline.
type segment struct {
	start point
	end   point
}

// chainTolerance is the maximum endpoint gap, in drawing units, at which two
// loose segments are still considered connected.
const chainTolerance = 0.01

// ImportDXF reads a wall elevation drawing. The largest closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) becomes the wall
// surface via its bounding box; every other closed shape becomes an opening
// positioned relative to the wall's bottom-left corner.
func ImportDXF(path string) DXFResult {
	result := DXFResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			o := polylineOutline(e)
			if len(o) >= 3 {
				outlines = append(outlines, o)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			full := sampleArc(e.Center[0], e.Center[1], e.Radius, 0, 2*math.Pi, 64)
			outlines = append(outlines, full[:len(full)-1])

		case *entity.Arc:
			start := e.Angle[0] * math.Pi / 180
			end := e.Angle[1] * math.Pi / 180
			if end <= start {
				end += 2 * math.Pi
			}
			pts := sampleArc(e.Circle.Center[0], e.Circle.Center[1], e.Circle.Radius, start, end, 32)
			segments = append(segments, toSegments(pts)...)

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})
		}
	}

	// Loose LINEs and ARCs only count once they close into a loop.
	for _, chained := range chainSegments(segments) {
		if len(chained) >= 3 {
			outlines = append(outlines, chained)
		}
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	// Largest outline is the wall, everything else is an opening.
	sort.Slice(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})

	wallMin, wallMax := boundingBox(outlines[0])
	wallW := wallMax.X - wallMin.X
	wallH := wallMax.Y - wallMin.Y
	if wallW < chainTolerance || wallH < chainTolerance {
		result.Errors = append(result.Errors, "Wall outline is degenerate")
		return result
	}
	result.Wall = model.WallSurface{Width: wallW, Height: wallH}

	openingNum := 0
	for _, o := range outlines[1:] {
		min, max := boundingBox(o)
		width := max.X - min.X
		height := max.Y - min.Y

		if width < chainTolerance || height < chainTolerance {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", width, height))
			continue
		}

		openingNum++
		label := fmt.Sprintf("Opening %d", openingNum)

		// Arched windows and circles are taken as their bounding box.
		if outlineArea(o) < 0.95*width*height {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s is not rectangular, using its bounding box", label))
		}

		x := min.X - wallMin.X
		y := min.Y - wallMin.Y
		if x < 0 || y < 0 || x+width > wallW || y+height > wallH {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s extends outside the wall outline", label))
		}

		result.Openings = append(result.Openings, model.NewExclusionZone(label, x, y, width, height))
	}

	return result
}

// polylineOutline converts an LWPOLYLINE to an outline, interpolating arc
// segments for vertices carrying a bulge factor.
func polylineOutline(lw *entity.LwPolyline) outline {
	var o outline

	for i := 0; i < len(lw.Vertices); i++ {
		current := point{X: lw.Vertices[i][0], Y: lw.Vertices[i][1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) < 1e-9 {
			o = append(o, current)
			continue
		}

		nextIdx := (i + 1) % len(lw.Vertices)
		next := point{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
		arc := bulgeArc(current, next, bulge)
		// The closing vertex arrives on its own iteration.
		o = append(o, arc[:len(arc)-1]...)
	}

	return o
}

// bulgeArc expands the arc between two polyline vertices. The DXF bulge is
// the tangent of a quarter of the included angle; its sign selects the sweep
// direction.
func bulgeArc(p1, p2 point, bulge float64) outline {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chord := math.Sqrt(dx*dx + dy*dy)
	if chord < 1e-9 {
		return outline{p1, p2}
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	// Arc center sits on the chord's perpendicular bisector.
	perpX := -dy / chord
	perpY := dx / chord
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := (p1.X+p2.X)/2 + perpX*(radius-sagitta)
	cy := (p1.Y+p2.Y)/2 + perpY*(radius-sagitta)

	start := math.Atan2(p1.Y-cy, p1.X-cx)
	end := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 && end > start {
		end -= 2 * math.Pi
	}
	if bulge > 0 && end < start {
		end += 2 * math.Pi
	}

	return sampleArc(cx, cy, radius, start, end, 32)
}

// sampleArc interpolates n+1 points along a circular arc, endpoints
// included. The sweep may run in either direction.
func sampleArc(cx, cy, r, start, end float64, n int) []point {
	pts := make([]point, 0, n+1)
	for i := 0; i <= n; i++ {
		angle := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		})
	}
	return pts
}

// toSegments links a point sequence into consecutive edges.
func toSegments(pts []point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments stitches loose segments into closed outlines by repeatedly
// extending each chain at its tail until no endpoint matches.
func chainSegments(segs []segment) []outline {
	used := make([]bool, len(segs))
	var outlines []outline

	for seed := 0; seed < len(segs); seed++ {
		if used[seed] {
			continue
		}
		chain := outline{segs[seed].start, segs[seed].end}
		used[seed] = true

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				switch {
				case near(tail, seg.start):
					chain = append(chain, seg.end)
				case near(tail, seg.end):
					chain = append(chain, seg.start)
				default:
					continue
				}
				used[i] = true
				extended = true
				break
			}
		}

		// A closed chain repeats its first point at the end; drop it.
		if len(chain) >= 3 && near(chain[0], chain[len(chain)-1]) {
			chain = chain[:len(chain)-1]
		}
		if len(chain) >= 3 {
			outlines = append(outlines, chain)
		}
	}

	return outlines
}

// near reports whether two endpoints are within chaining tolerance.
func near(a, b point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= chainTolerance
}

// outlineArea computes the absolute polygon area via the shoelace formula.
func outlineArea(o outline) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return math.Abs(area) / 2
}

// boundingBox returns the min and max corners of an outline.
func boundingBox(o outline) (point, point) {
	min := point{X: math.Inf(1), Y: math.Inf(1)}
	max := point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range o {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
