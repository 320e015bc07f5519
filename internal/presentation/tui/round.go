package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewOutput returns a termenv output for w. Anything that is not a
// terminal gets plain ASCII so pipes and logs stay clean.
func NewOutput(w io.Writer) *termenv.Output {
	if !IsTerminal(w) {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

var improvementColors = map[domain.Improvement]string{
	domain.ImprovementBetter: "#22c55e",
	domain.ImprovementSame:   "#eab308",
	domain.ImprovementWorse:  "#ef4444",
}

// FormatRound renders one round of statistics as a single line.
func FormatRound(o *termenv.Output, s domain.RoundStats) string {
	mark := o.String(fmt.Sprintf("%-6s", s.Improvement)).Foreground(o.Color(improvementColors[s.Improvement]))
	return fmt.Sprintf("round %4d  visits %6d  best %+.4f  %s", s.Round, s.RootVisits, s.BestValue, mark)
}

// FormatTree renders the end of search summary.
func FormatTree(o *termenv.Output, s domain.TreeStats) string {
	var b strings.Builder
	title := o.String("Search summary").Bold()
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "  rounds     %d\n", s.Round)
	fmt.Fprintf(&b, "  tree size  %d\n", s.TreeSize)
	fmt.Fprintf(&b, "  max depth  %d\n", s.MaxDepth)
	fmt.Fprintf(&b, "  best value %+.4f\n", s.BestValue)
	if len(s.PrincipalVariation) > 0 {
		fmt.Fprintf(&b, "  line       %s\n", strings.Join(s.PrincipalVariation, " "))
	}
	for _, c := range s.Children {
		fmt.Fprintf(&b, "    %-8s visits %6d  value %+.4f\n", c.Action, c.Visits, c.Value)
	}
	return b.String()
}
