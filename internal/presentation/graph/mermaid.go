package graph

import (
	"fmt"
	"strings"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a search tree snapshot.
// It applies semantic styling:
// - Root: ((Circle))
// - Unvisited: [/Parallelogram/]
// - Default: [Rectangle]
// Edges carry the action; labels carry visits and mean value.
// Nodes on the principal variation get the "principal" class.
func GenerateMermaid(nodes []domain.NodeView) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var principal []string
	for _, node := range nodes {
		id := nodeID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.Parent < 0:
			opener, closer = "((", "))"
		case node.Visits == 0:
			opener, closer = "[/", "/]"
		}

		label := fmt.Sprintf("n=%d <br/> v=%.3f", node.Visits, node.Value)
		if node.Parent < 0 {
			label = fmt.Sprintf("root <br/> n=%d", node.Visits)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))

		if node.Parent >= 0 {
			// Escape double quotes in the action for the Mermaid label
			action := strings.ReplaceAll(node.Action, "\"", "'")
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(node.Parent), action, id))
		}
		if node.Principal {
			principal = append(principal, id)
		}
	}

	if len(principal) > 0 {
		sb.WriteString("\n    %% Principal variation\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef principal fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s principal;\n", strings.Join(principal, ",")))
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("n%d", i)
}
