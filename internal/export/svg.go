// Package export renders generation output for human inspection: an SVG
// spoiler map and JSON dumps of the seed universe. Neither file format is
// part of the seed's wire contract (that's internal/seedoutput); this
// package exists purely for debugging and spoiler browsing.
package export

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/requirement"
	"github.com/owowisp/mosswright/internal/seedoutput"
)

// SVGOptions configures the spoiler-map visualization.
type SVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	ShowLabels bool   // Show node identifier labels
	ShowHeatmap bool  // Color pickups by the placement group that reached them
	ShowLegend bool   // Show legend explaining colors
	NodeRadius int    // Radius of node circles (default: 16)
	EdgeWidth  int    // Width of connection lines (default: 2)
	Margin     int    // Canvas margin in pixels (default: 60)
	Title      string // Optional title
	ShowStats  bool   // Show node/edge/group counts
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       1200,
		Height:      900,
		ShowLabels:  true,
		ShowHeatmap: true,
		ShowLegend:  true,
		NodeRadius:  16,
		EdgeWidth:   2,
		Margin:      60,
		Title:       "Seed Spoiler Map",
		ShowStats:   true,
	}
}

// ExportSVG renders one world's graph as an SVG spoiler map: nodes colored
// by kind (or, with ShowHeatmap, by the placement group that first reached
// them), edges for every anchor connection, and item labels drawn from the
// spoiler's recorded placements.
func ExportSVG(g *logic.Graph, worldIndex int, spoiler *seedoutput.SeedSpoiler, opts SVGOptions) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("export: graph cannot be nil")
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = 16
	}
	if opts.EdgeWidth <= 0 {
		opts.EdgeWidth = 2
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	positions := calculateLayout(g, opts)
	placements := placementIndex(worldIndex, spoiler)
	groupOf := reachedGroupIndex(worldIndex, spoiler)

	drawEdges(canvas, g, positions, opts)
	drawNodes(canvas, g, positions, groupOf, opts)
	if opts.ShowLabels {
		drawLabels(canvas, g, positions, placements, opts)
	}
	if opts.ShowLegend {
		drawLegend(canvas, opts)
	}
	if opts.Title != "" || opts.ShowStats {
		drawHeader(canvas, g, worldIndex, spoiler, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders and writes the spoiler map to path with 0644
// permissions.
func SaveSVGToFile(g *logic.Graph, worldIndex int, spoiler *seedoutput.SeedSpoiler, path string, opts SVGOptions) error {
	data, err := ExportSVG(g, worldIndex, spoiler, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

type position struct {
	X, Y float64
}

// placementIndex maps a node identifier to its placed item, across both
// preplacements and every main-loop group, for the given world.
func placementIndex(worldIndex int, spoiler *seedoutput.SeedSpoiler) map[string]seedoutput.SpoilerItem {
	out := make(map[string]seedoutput.SpoilerItem)
	if spoiler == nil {
		return out
	}
	apply := func(placements []seedoutput.SpoilerPlacement) {
		for _, p := range placements {
			if p.OriginWorldIndex != worldIndex {
				continue
			}
			out[p.Location.Identifier] = p.Item
		}
	}
	apply(spoiler.Preplacements)
	for _, grp := range spoiler.Groups {
		apply(grp.Placements)
	}
	return out
}

// reachedGroupIndex maps a node identifier to the index of the first
// SpoilerGroup whose Reachable list contains it, for the given world —
// used to heatmap how early in generation a location opened up.
func reachedGroupIndex(worldIndex int, spoiler *seedoutput.SeedSpoiler) map[string]int {
	out := make(map[string]int)
	if spoiler == nil {
		return out
	}
	for gi, grp := range spoiler.Groups {
		if worldIndex >= len(grp.Reachable) {
			continue
		}
		for _, n := range grp.Reachable[worldIndex] {
			if _, seen := out[n.Identifier]; !seen {
				out[n.Identifier] = gi
			}
		}
	}
	return out
}

// calculateLayout seeds every node on a circle (sorted by identifier, so the
// starting configuration is deterministic) and then relaxes it with a
// force-directed pass: connected nodes spring together, every pair repels,
// velocities are damped each step. Graphs with gated branches and keystone
// loops end up with the connected clusters pulled apart instead of smeared
// evenly around a ring, which reads better once labels are added.
func calculateLayout(g *logic.Graph, opts SVGOptions) map[string]position {
	positions := make(map[string]position)
	if len(g.Nodes) == 0 {
		return positions
	}

	drawWidth := float64(opts.Width - 2*opts.Margin - 2*opts.NodeRadius)
	drawHeight := float64(opts.Height - 2*opts.Margin - 2*opts.NodeRadius - 100)

	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.Identifier)
	}
	sort.Strings(ids)

	centerX := float64(opts.Width) / 2
	centerY := float64(opts.Height-100) / 2
	radius := math.Min(drawWidth, drawHeight) / 2.5

	angleStep := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := float64(i) * angleStep
		positions[id] = position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	relaxLayout(g, positions, ids, drawWidth, drawHeight)
	return positions
}

const (
	layoutIterations        = 120
	layoutSpringConstant     = 0.02
	layoutRepulsionConstant  = 6000.0
	layoutDamping            = 0.85
	layoutStabilityThreshold = 0.05
)

// relaxLayout runs a fixed-point force simulation over positions in place.
// Node order is always the sorted id slice, so two runs over the same graph
// produce bit-identical output.
func relaxLayout(g *logic.Graph, positions map[string]position, ids []string, drawWidth, drawHeight float64) {
	type velocity struct{ vx, vy float64 }
	vel := make(map[string]velocity, len(ids))
	for _, id := range ids {
		vel[id] = velocity{}
	}

	edges := make([][2]string, 0)
	for _, n := range g.Nodes {
		for _, conn := range n.Connections {
			target := g.Node(conn.To)
			edges = append(edges, [2]string{n.Identifier, target.Identifier})
		}
	}

	centerX := positions[ids[0]].X
	centerY := positions[ids[0]].Y
	for _, id := range ids {
		centerX += positions[id].X
		centerY += positions[id].Y
	}
	centerX /= float64(len(ids) + 1)
	centerY /= float64(len(ids) + 1)

	const dt = 0.12
	for iter := 0; iter < layoutIterations; iter++ {
		force := make(map[string][2]float64, len(ids))

		for _, from := range edges {
			a, b := from[0], from[1]
			pa, pb := positions[a], positions[b]
			dx, dy := pb.X-pa.X, pb.Y-pa.Y
			dist := math.Hypot(dx, dy)
			if dist < 0.001 {
				continue
			}
			mag := layoutSpringConstant * dist
			fx, fy := mag*dx/dist, mag*dy/dist
			fa := force[a]
			fa[0] += fx
			fa[1] += fy
			force[a] = fa
			fb := force[b]
			fb[0] -= fx
			fb[1] -= fy
			force[b] = fb
		}

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a, b := ids[i], ids[j]
				pa, pb := positions[a], positions[b]
				dx, dy := pb.X-pa.X, pb.Y-pa.Y
				distSq := dx*dx + dy*dy
				if distSq < 0.001 {
					distSq = 0.001
				}
				dist := math.Sqrt(distSq)
				mag := layoutRepulsionConstant / distSq
				fx, fy := mag*dx/dist, mag*dy/dist
				fa := force[a]
				fa[0] -= fx
				fa[1] -= fy
				force[a] = fa
				fb := force[b]
				fb[0] += fx
				fb[1] += fy
				force[b] = fb
			}
		}

		maxMovement := 0.0
		for _, id := range ids {
			f := force[id]
			v := vel[id]
			v.vx = v.vx*layoutDamping + f[0]*dt
			v.vy = v.vy*layoutDamping + f[1]*dt
			vel[id] = v

			p := positions[id]
			p.X += v.vx * dt
			p.Y += v.vy * dt
			positions[id] = p

			if m := math.Hypot(v.vx, v.vy); m > maxMovement {
				maxMovement = m
			}
		}

		if maxMovement < layoutStabilityThreshold {
			break
		}
	}

	clampToBounds(positions, ids, centerX, centerY, drawWidth, drawHeight)
}

// clampToBounds pulls in any node the simulation flung outside the drawable
// canvas by clamping its offset from (centerX, centerY) to half the draw
// width/height; it does not move the cloud's center.
func clampToBounds(positions map[string]position, ids []string, centerX, centerY, drawWidth, drawHeight float64) {
	maxX, maxY := drawWidth/2, drawHeight/2
	for _, id := range ids {
		p := positions[id]
		dx, dy := p.X-centerX, p.Y-centerY
		if dx > maxX {
			dx = maxX
		} else if dx < -maxX {
			dx = -maxX
		}
		if dy > maxY {
			dy = maxY
		} else if dy < -maxY {
			dy = -maxY
		}
		positions[id] = position{X: centerX + dx, Y: centerY + dy}
	}
}

// drawEdges renders every anchor's outgoing connections as lines.
func drawEdges(canvas *svg.SVG, g *logic.Graph, positions map[string]position, opts SVGOptions) {
	for _, n := range g.Nodes {
		if n.Kind != logic.NodeAnchor {
			continue
		}
		from, ok := positions[n.Identifier]
		if !ok {
			continue
		}
		for _, conn := range n.Connections {
			target := g.Node(conn.To)
			to, ok := positions[target.Identifier]
			if !ok {
				continue
			}
			color, style := "#4a5568", "opacity:0.8"
			if conn.Requirement.Kind != requirement.KFree {
				color, style = "#ed8936", "opacity:0.6;stroke-dasharray:4,3"
			}
			canvas.Line(int(from.X), int(from.Y), int(to.X), int(to.Y),
				fmt.Sprintf("stroke:%s;stroke-width:%d;%s", color, opts.EdgeWidth, style))
		}
	}
}

var groupPalette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#9f7aea", "#ec4899", "#14b8a6"}

func getNodeColor(n logic.Node, groupOf map[string]int, opts SVGOptions) string {
	if opts.ShowHeatmap && n.IsPickup() {
		if gi, ok := groupOf[n.Identifier]; ok {
			return groupPalette[gi%len(groupPalette)]
		}
	}
	switch n.Kind {
	case logic.NodeAnchor:
		return "#ffd700"
	case logic.NodePickup:
		return "#48bb78"
	case logic.NodeQuest:
		return "#4299e1"
	default:
		return "#718096"
	}
}

func drawNodes(canvas *svg.SVG, g *logic.Graph, positions map[string]position, groupOf map[string]int, opts SVGOptions) {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.Identifier)
	}
	sort.Strings(ids)

	for _, id := range ids {
		idx, _ := g.IndexOf(id)
		n := g.Node(idx)
		pos, ok := positions[id]
		if !ok {
			continue
		}
		color := getNodeColor(n, groupOf, opts)
		radius := opts.NodeRadius
		if n.Kind == logic.NodeAnchor {
			radius = int(float64(radius) * 1.3)
		}
		canvas.Circle(int(pos.X), int(pos.Y), radius,
			fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:2;opacity:0.9", color))
	}
}

func drawLabels(canvas *svg.SVG, g *logic.Graph, positions map[string]position, placements map[string]seedoutput.SpoilerItem, opts SVGOptions) {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.Identifier)
	}
	sort.Strings(ids)

	for _, id := range ids {
		pos, ok := positions[id]
		if !ok {
			continue
		}
		label := id
		if it, ok := placements[id]; ok {
			label = fmt.Sprintf("%s: %s", id, it.Name)
		}
		canvas.Text(int(pos.X), int(pos.Y)+opts.NodeRadius+14, label,
			"text-anchor:middle;font-size:10px;fill:#e2e8f0;font-family:sans-serif")
	}
}

func drawLegend(canvas *svg.SVG, opts SVGOptions) {
	legendX := opts.Width - opts.Margin - 170
	legendY := opts.Margin + 20

	canvas.Rect(legendX-10, legendY-15, 180, 170,
		"fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.95;rx:5")
	canvas.Text(legendX, legendY, "Node Kinds", "font-size:14px;font-weight:bold;fill:#e2e8f0")
	legendY += 25

	entries := []struct {
		name  string
		color string
	}{
		{"Anchor", "#ffd700"},
		{"Pickup", "#48bb78"},
		{"Quest", "#4299e1"},
		{"State", "#718096"},
	}
	for _, e := range entries {
		canvas.Circle(legendX+8, legendY, 8, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", e.color))
		canvas.Text(legendX+25, legendY+4, e.name, "font-size:11px;fill:#cbd5e0")
		legendY += 22
	}

	legendY += 10
	canvas.Line(legendX, legendY, legendX+30, legendY, "stroke:#4a5568;stroke-width:2")
	canvas.Text(legendX+35, legendY+4, "Free path", "font-size:11px;fill:#cbd5e0")
	legendY += 18
	canvas.Line(legendX, legendY, legendX+30, legendY, "stroke:#ed8936;stroke-width:2;stroke-dasharray:4,3")
	canvas.Text(legendX+35, legendY+4, "Gated path", "font-size:11px;fill:#cbd5e0")
}

func drawHeader(canvas *svg.SVG, g *logic.Graph, worldIndex int, spoiler *seedoutput.SeedSpoiler, opts SVGOptions) {
	headerY := 25
	if opts.Title != "" {
		canvas.Text(opts.Width/2, headerY, opts.Title,
			"text-anchor:middle;font-size:20px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		headerY += 30
	}
	if opts.ShowStats {
		edges := 0
		for _, n := range g.Nodes {
			edges += len(n.Connections)
		}
		stats := fmt.Sprintf("World %d | Nodes: %d | Edges: %d", worldIndex, len(g.Nodes), edges)
		if spoiler != nil {
			stats += fmt.Sprintf(" | Groups: %d | RunID: %s", len(spoiler.Groups), spoiler.RunID)
		}
		canvas.Text(opts.Width/2, headerY, stats,
			"text-anchor:middle;font-size:12px;fill:#a0aec0;font-family:monospace")
	}
}
