package export

import (
	"strings"
	"testing"

	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/requirement"
	"github.com/owowisp/mosswright/internal/seedoutput"
)

func exportTestGraph() *logic.Graph {
	nodes := []logic.Node{
		{Kind: logic.NodeAnchor, Identifier: "spawn", CanSpawn: true, Connections: []logic.Connection{
			{To: 1, Requirement: requirement.Free},
		}},
		{Kind: logic.NodePickup, Identifier: "p0", Zone: "Glades"},
	}
	return logic.NewGraph(nodes, nil)
}

func TestExportSVG_Basic(t *testing.T) {
	g := exportTestGraph()
	opts := DefaultSVGOptions()
	opts.Title = "Test Seed"

	data, err := ExportSVG(g, 0, nil, opts)
	if err != nil {
		t.Fatalf("ExportSVG failed: %v", err)
	}
	svgStr := string(data)
	if !strings.Contains(svgStr, "<svg") || !strings.Contains(svgStr, "</svg>") {
		t.Error("output is not a well-formed SVG document")
	}
}

func TestExportSVG_NilGraph(t *testing.T) {
	opts := DefaultSVGOptions()
	if _, err := ExportSVG(nil, 0, nil, opts); err == nil {
		t.Error("expected error for nil graph, got nil")
	}
}

func TestExportSVG_LabelsPlacedItem(t *testing.T) {
	g := exportTestGraph()
	spoiler := &seedoutput.SeedSpoiler{
		Groups: []seedoutput.SpoilerGroup{
			{
				Placements: []seedoutput.SpoilerPlacement{
					{
						OriginWorldIndex: 0,
						TargetWorldIndex: 0,
						Location:         seedoutput.NodeSummary{Identifier: "p0", Zone: "Glades"},
						Item:             seedoutput.SpoilerItem{Code: "skill|bash", Name: "Bash"},
					},
				},
			},
		},
	}

	data, err := ExportSVG(g, 0, spoiler, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG failed: %v", err)
	}
	if !strings.Contains(string(data), "Bash") {
		t.Error("expected rendered label to include the placed item's name")
	}
}
