package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_NewIDIsVersion4(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := g.NewID()
	require.NoError(t, err)
	second, err := g.NewID()
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())
}

func TestStaticGenerator(t *testing.T) {
	v, err := StaticGenerator("fixed").NewID()
	require.NoError(t, err)
	require.Equal(t, "fixed", v)

	_, err = StaticGenerator("").NewID()
	require.Error(t, err)
}
