package placement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/owowisp/mosswright/internal/logic"
	"github.com/owowisp/mosswright/internal/seedoutput"
	"github.com/owowisp/mosswright/internal/settings"
)

// goalStateNodes returns the indices of every node whose uber state gates
// the given goal's completion condition (spec §6 "Goals": "Trees goal
// emits a condition that all tree-state bindings be true before the
// final-boss trigger fires"). Node selection follows the graph's naming
// convention rather than a separate tag field: Trees/Wisps match pickups
// or quests named accordingly, Quests matches every quest node, and
// AllCollectibles matches every pickup/quest node.
func goalStateNodes(g *logic.Graph, goal settings.Goal) []int {
	var out []int
	for i, nd := range g.Nodes {
		if !nd.IsPickup() {
			continue
		}
		switch goal {
		case settings.GoalForceTrees:
			if strings.Contains(nd.Identifier, "Tree") {
				out = append(out, i)
			}
		case settings.GoalForceWisps:
			if strings.Contains(nd.Identifier, "Wisp") {
				out = append(out, i)
			}
		case settings.GoalForceQuests:
			if nd.Kind == logic.NodeQuest {
				out = append(out, i)
			}
		case settings.GoalAllCollectibles:
			out = append(out, i)
		}
	}
	return out
}

// goalConditionExpr builds the boolean expression string referencing every
// state node's uber binding, ANDed together in stable node-index order so
// the same graph and goal always produce the same expression.
func goalConditionExpr(g *logic.Graph, indices []int) string {
	sort.Ints(indices)
	parts := make([]string, len(indices))
	for i, idx := range indices {
		nd := g.Node(idx)
		parts[i] = fmt.Sprintf("state(%d|%d)", nd.UberGroup, nd.UberID)
	}
	return strings.Join(parts, " && ")
}

// emitGoalEvents appends one Condition event per configured goal to the
// world it applies to (spec §6 "Goals": "appended, not interleaved" — this
// runs once, after fillRemainder, with every location already holding its
// final item).
func (c *Context) emitGoalEvents() {
	for _, wc := range c.Worlds {
		for _, goal := range wc.Player.Settings.Goals {
			indices := goalStateNodes(wc.Graph, goal)
			if len(indices) == 0 {
				continue
			}
			trigger := seedoutput.Trigger{
				Kind:          seedoutput.TriggerCondition,
				ConditionExpr: goalConditionExpr(wc.Graph, indices),
			}
			wc.World.AddEvent(seedoutput.Event{
				Trigger: trigger,
				Command: "goal_complete|" + goal.String(),
			})
		}
	}
}
