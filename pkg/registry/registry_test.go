package registry

import (
	"errors"
	"testing"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct{ size int }

func (fakeState) CurrentPlayer() int                          { return 1 }
func (fakeState) LegalActions() []domain.Action               { return nil }
func (s fakeState) Apply(domain.Action) (domain.State, error) { return s, nil }
func (fakeState) IsTerminal() bool                            { return true }
func (fakeState) Reward() float64                             { return 0 }

func TestRegistry_Build(t *testing.T) {
	r := NewRegistry()
	r.Register("fake", "a fake domain", func(args map[string]any) (domain.State, error) {
		var cfg struct {
			Size int `json:"size"`
		}
		if err := Decode(args, &cfg); err != nil {
			return nil, err
		}
		return fakeState{size: cfg.Size}, nil
	})

	t.Run("typed args", func(t *testing.T) {
		s, err := r.Build(domain.Descriptor{Domain: "fake", Args: map[string]any{"size": 3}})
		require.NoError(t, err)
		assert.Equal(t, 3, s.(fakeState).size)
	})

	t.Run("weakly typed args", func(t *testing.T) {
		s, err := r.Build(domain.Descriptor{Domain: "fake", Args: map[string]any{"size": "7"}})
		require.NoError(t, err)
		assert.Equal(t, 7, s.(fakeState).size)
	})

	t.Run("nil args", func(t *testing.T) {
		s, err := r.Build(domain.Descriptor{Domain: "fake"})
		require.NoError(t, err)
		assert.Equal(t, 0, s.(fakeState).size)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := r.Build(domain.Descriptor{Domain: "fake", Args: map[string]any{"colour": "red"}})
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("unknown domain", func(t *testing.T) {
		_, err := r.Build(domain.Descriptor{Domain: "missing"})
		assert.ErrorIs(t, err, domain.ErrUnknownDomain)
	})
}

func TestRegistry_FactoryError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("broken", "", func(map[string]any) (domain.State, error) { return nil, boom })

	_, err := r.Build(domain.Descriptor{Domain: "broken"})
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	r.Register("b", "second", nil)
	r.Register("a", "first", nil)
	r.Register("a", "first again", nil)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "first again", list[0].Description)
	assert.Equal(t, "b", list[1].Name)
}
