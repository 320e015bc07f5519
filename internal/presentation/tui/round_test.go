package tui

import (
	"bytes"
	"testing"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestFormatRound_Plain(t *testing.T) {
	o := NewOutput(&bytes.Buffer{})
	line := FormatRound(o, domain.RoundStats{Round: 3, Improvement: domain.ImprovementBetter, BestValue: 0.5, RootVisits: 3})

	assert.Equal(t, "round    3  visits      3  best +0.5000  better", line)
}

func TestFormatTree_Plain(t *testing.T) {
	o := NewOutput(&bytes.Buffer{})
	out := FormatTree(o, domain.TreeStats{
		Round:              10,
		TreeSize:           11,
		MaxDepth:           2,
		BestValue:          1,
		PrincipalVariation: []string{"4", "0"},
		Children:           []domain.ChildStats{{Action: "4", Visits: 9, Value: 1}},
	})

	assert.Contains(t, out, "Search summary")
	assert.Contains(t, out, "line       4 0")
	assert.Contains(t, out, "visits      9")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}
