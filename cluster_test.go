package tablefind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestClusterFloatsScenario2(t *testing.T) {
	got := tablefind.ClusterFloats([]float64{1, 2, 5, 6, 10}, 2)
	require.Equal(t, [][]float64{{1, 2}, {5, 6}, {10}}, got)

	gotNoTol := tablefind.ClusterFloats([]float64{1, 2, 5, 6, 10}, 0)
	require.Equal(t, [][]float64{{1}, {2}, {5}, {6}, {10}}, gotNoTol)
}

func TestClusterFloatsUnordered(t *testing.T) {
	got := tablefind.ClusterFloats([]float64{10, 1, 6, 2, 5}, 2)
	require.Equal(t, [][]float64{{1, 2}, {5, 6}, {10}}, got)
}

func TestClusterFloatsEmpty(t *testing.T) {
	require.Nil(t, tablefind.ClusterFloats(nil, 2))
}
