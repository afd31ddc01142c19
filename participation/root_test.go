package participation_test

import (
	"testing"

	"github.com/aminnizamdev/obex/participation"
	"github.com/aminnizamdev/obex/primitives"
	"github.com/stretchr/testify/require"
)

func TestBuildPartRootEmpty(t *testing.T) {
	root := participation.BuildPartRoot(nil)
	require.Equal(t, primitives.MerkleEmptyRoot(), root)
}

func TestBuildPartRootSortsAndDedupes(t *testing.T) {
	a := [32]byte{1}
	b := [32]byte{2}
	c := [32]byte{3}

	r1 := participation.BuildPartRoot([][32]byte{c, a, b})
	r2 := participation.BuildPartRoot([][32]byte{a, b, c})
	r3 := participation.BuildPartRoot([][32]byte{a, a, b, c, c})

	require.Equal(t, r1, r2)
	require.Equal(t, r1, r3)
}

func TestBuildPartRootDiffersByMembership(t *testing.T) {
	a := [32]byte{1}
	b := [32]byte{2}

	r1 := participation.BuildPartRoot([][32]byte{a})
	r2 := participation.BuildPartRoot([][32]byte{a, b})
	require.NotEqual(t, r1, r2)
}
