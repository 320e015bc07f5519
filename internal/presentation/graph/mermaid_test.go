package graph_test

import (
	"strings"
	"testing"

	"github.com/akuroiwa/mcts-gen/internal/presentation/graph"
	"github.com/akuroiwa/mcts-gen/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		nodes       []domain.NodeView
		contains    []string
		notContains []string
	}{
		{
			name:  "Root Shape",
			nodes: []domain.NodeView{{ID: 0, Parent: -1, Visits: 4}},
			contains: []string{
				"graph TD",
				"n0((\"root <br/> n=4\"))",
			},
			notContains: []string{"-->", "classDef"},
		},
		{
			name: "Edges Carry Actions",
			nodes: []domain.NodeView{
				{ID: 0, Parent: -1, Visits: 2},
				{ID: 1, Parent: 0, Action: "e2e4", Depth: 1, Visits: 2, Value: 0.5},
				{ID: 2, Parent: 1, Action: "e7e5", Depth: 2},
			},
			contains: []string{
				"n1[\"n=2 <br/> v=0.500\"]",
				"n0 -- \"e2e4\" --> n1",
				"n2[/\"n=0 <br/> v=0.000\"/]",
				"n1 -- \"e7e5\" --> n2",
			},
		},
		{
			name: "Quotes Escaped",
			nodes: []domain.NodeView{
				{ID: 0, Parent: -1},
				{ID: 1, Parent: 0, Action: `say "hi"`, Visits: 1},
			},
			contains: []string{"n0 -- \"say 'hi'\" --> n1"},
		},
		{
			name: "Principal Variation Styled",
			nodes: []domain.NodeView{
				{ID: 0, Parent: -1, Visits: 3, Principal: true},
				{ID: 1, Parent: 0, Action: "1", Visits: 2, Principal: true},
				{ID: 2, Parent: 0, Action: "2", Visits: 1},
			},
			contains: []string{
				"classDef principal",
				"class n0,n1 principal;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.nodes)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() missing %q\nGot:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() unexpectedly contains %q\nGot:\n%s", unwanted, got)
				}
			}
		})
	}
}
