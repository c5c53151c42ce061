package guard_test

import (
	"errors"
	"testing"

	"errand/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("Stage must be created via NewStage")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}
	errQuantityNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v <= 0 {
			return quantity{}, errors.New("quantity must be positive")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	q, err := newQuantity(3)
	require.NoError(t, err)
	require.NoError(t, q.guard.Validate(errQuantityNotConstructed))

	_, err = newQuantity(0)
	require.Error(t, err)

	var zero quantity
	assert.Equal(t, errQuantityNotConstructed, zero.guard.Validate(errQuantityNotConstructed))
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
