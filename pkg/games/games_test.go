package games

import (
	"testing"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	var names []string
	for _, e := range r.List() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"chess", "nim", "tictactoe"}, names)

	for _, name := range names {
		s, err := r.Build(domain.Descriptor{Domain: name})
		require.NoError(t, err, name)
		assert.NotEmpty(t, s.LegalActions(), name)
	}
}
