package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.False(t, id1.IsEqual(id2))
	assert.False(t, id1.IsZero())
}

func TestNameUUID(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		assert.True(t, kernel.NameUUID("unknown-vendor").IsEqual(kernel.NameUUID("unknown-vendor")))
	})

	t.Run("differs per name", func(t *testing.T) {
		assert.False(t, kernel.NameUUID("a").IsEqual(kernel.NameUUID("b")))
	})

	t.Run("is valid", func(t *testing.T) {
		require.NoError(t, kernel.NameUUID("x").Validate())
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	for _, input := range []string{
		canonical,
		"{550e8400-e29b-41d4-a716-446655440000}",
		"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
		"550e8400e29b41d4a716446655440000",
	} {
		t.Run(input, func(t *testing.T) {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}

	for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid UUID format")
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(id))
	})

	t.Run("rejects nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(uuid.Nil[:])

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestUUID_ZeroValue(t *testing.T) {
	var id kernel.UUID

	assert.True(t, id.IsZero())
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}
