package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// segment is a line between two points, used to chain LINE entities.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// Circle is a CIRCLE entity read back from a drawing.
type Circle struct {
	Center model.Point2D
	Radius float64
}

// InspectResult summarises a DXF drawing.
type InspectResult struct {
	Counts   map[string]int  // entity type -> count
	Outlines []model.Outline // closed polylines, largest first
	Circles  []Circle
	Open     int // LINE chains that do not close
	Errors   []string
	Warnings []string
}

// InspectDXF reads a DXF file and collects its closed outlines, circles and
// entity counts. Used to check exported drawings.
func InspectDXF(path string) InspectResult {
	result := InspectResult{Counts: map[string]int{}}

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

	var segments []segment
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			result.Counts["LWPOLYLINE"]++
			outline := lwPolylineToOutline(e)
			if len(outline) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			result.Outlines = append(result.Outlines, outline)
			for _, b := range e.Bulges {
				if math.Abs(b) > 1e-9 {
					result.Warnings = append(result.Warnings, "LWPOLYLINE bulges read as straight edges")
					break
				}
			}

		case *entity.Circle:
			result.Counts["CIRCLE"]++
			result.Circles = append(result.Circles, Circle{
				Center: model.Point2D{X: e.Center[0], Y: e.Center[1]},
				Radius: e.Radius,
			})

		case *entity.Line:
			result.Counts["LINE"]++
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		case *entity.Arc:
			result.Counts["ARC"]++

		case *entity.Text:
			result.Counts["TEXT"]++

		default:
			result.Counts["OTHER"]++
		}
	}

	closed, open := chainSegments(segments, 0.01)
	result.Outlines = append(result.Outlines, closed...)
	result.Open = open

	sort.SliceStable(result.Outlines, func(i, j int) bool {
		return outlineArea(result.Outlines[i]) > outlineArea(result.Outlines[j])
	})
	return result
}

// lwPolylineToOutline converts the vertices of a LWPOLYLINE to an outline.
func lwPolylineToOutline(lw *entity.LwPolyline) model.Outline {
	outline := make(model.Outline, 0, len(lw.Vertices))
	for _, v := range lw.Vertices {
		outline = append(outline, model.Point2D{X: v[0], Y: v[1]})
	}
	return outline
}

// chainSegments joins segments end to end. It returns the closed chains and
// the number of chains left open.
func chainSegments(segs []segment, tolerance float64) ([]model.Outline, int) {
	used := make([]bool, len(segs))
	var closed []model.Outline
	open := 0

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []model.Point2D{segs[start].start, segs[start].end}

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]
			for i, seg := range segs {
				if used[i] {
					continue
				}
				var next model.Point2D
				switch {
				case pointsClose(tail, seg.start, tolerance):
					next = seg.end
				case pointsClose(tail, seg.end, tolerance):
					next = seg.start
				default:
					continue
				}
				chain = append(chain, next)
				used[i] = true
				extended = true
				break
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			closed = append(closed, model.Outline(chain[:len(chain)-1]))
		} else {
			open++
		}
	}
	return closed, open
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point2D, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o model.Outline) float64 {
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
