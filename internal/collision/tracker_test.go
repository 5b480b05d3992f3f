package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/logintpack/errs"
	"github.com/arloliu/logintpack/internal/hash"
)

func TestTracker(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track("dxy", hash.ID("dxy")))
	require.NoError(t, tr.Track("dz", hash.ID("dz")))
	require.Equal(t, 2, tr.Count())
	require.Equal(t, []string{"dxy", "dz"}, tr.Names())

	require.ErrorIs(t, tr.Track("", hash.ID("")), errs.ErrInvalidColumnName)
	require.ErrorIs(t, tr.Track("dz", hash.ID("dz")), errs.ErrDuplicateColumn)

	// forced collision: different name, same id
	require.ErrorIs(t, tr.Track("other", hash.ID("dxy")), errs.ErrHashCollision)
	require.Equal(t, 2, tr.Count())

	tr.Reset()
	require.Equal(t, 0, tr.Count())
	require.NoError(t, tr.Track("dz", hash.ID("dz")))
}
