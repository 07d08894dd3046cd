package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptySumset(t *testing.T) {
	s := EmptySumset()
	require.Equal(t, 0, s.Sum)
	require.Equal(t, 0, s.Last)
	require.True(t, s.Contains(0))
	require.Empty(t, s.Elements())
}

func TestExtend(t *testing.T) {
	s := EmptySumset().Extend(2).Extend(5)
	require.Equal(t, 7, s.Sum)
	require.Equal(t, 5, s.Last)
	require.True(t, s.Contains(2))
	require.True(t, s.Contains(5))
	require.False(t, s.Contains(3))
	require.Equal(t, []int{2, 5}, s.Elements())
	require.Equal(t, "2 5", s.String())
}

func TestIntersection(t *testing.T) {
	a := EmptySumset().Extend(1).Extend(4)
	b := EmptySumset().Extend(2).Extend(3)
	require.True(t, a.IntersectionTrivial(b))
	require.Equal(t, 1, a.IntersectionSize(b))
	require.Equal(t, 0, a.sharedElement(b))

	c := b.Extend(4)
	require.False(t, a.IntersectionTrivial(c))
	require.Equal(t, 2, a.IntersectionSize(c))
	require.Equal(t, 4, a.sharedElement(c))
}

func TestRemove(t *testing.T) {
	s := EmptySumset().Extend(2).Extend(3).Extend(5)
	r := s.remove(5)
	require.Equal(t, 5, r.Sum)
	require.Equal(t, 3, r.Last)
	require.Equal(t, []int{2, 3}, r.Elements())

	r = s.remove(3)
	require.Equal(t, 7, r.Sum)
	require.Equal(t, 5, r.Last)

	only := EmptySumset().Extend(4).remove(4)
	require.Equal(t, 0, only.Sum)
	require.Equal(t, 0, only.Last)
	require.Empty(t, only.Elements())
}
