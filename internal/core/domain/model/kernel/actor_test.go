package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		a, err := kernel.NewActor(" u-1 ", " ops@shop.test ", " Dewi ")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "u-1", a.UserID())
		assert.Equal(t, "ops@shop.test", a.Email())
		assert.Equal(t, "Dewi", a.Name())
	})

	t.Run("requires user id", func(t *testing.T) {
		_, err := kernel.NewActor("  ", "x@y", "X")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSystemActor(t *testing.T) {
	a := kernel.SystemActor()

	require.NoError(t, a.Validate())
	assert.Equal(t, "system", a.UserID())
}

func TestActor_ZeroValue(t *testing.T) {
	var a kernel.Actor

	assert.Equal(t, kernel.ErrActorIsNotConstructed, a.Validate())
}
