package primitives_test

import (
	"testing"

	"github.com/aminnizamdev/obex/primitives"
	"github.com/stretchr/testify/require"
)

func TestHDeterministic(t *testing.T) {
	a := primitives.H("tag.a", []byte("x"), []byte("y"))
	b := primitives.H("tag.a", []byte("x"), []byte("y"))
	require.True(t, a.Equal(b))
}

func TestHFramingIsNotConcatenationAmbiguous(t *testing.T) {
	// H must length-frame each part; "x"+"yz" must not collide with "xy"+"z".
	a := primitives.H("tag", []byte("x"), []byte("yz"))
	b := primitives.H("tag", []byte("xy"), []byte("z"))
	require.False(t, a.Equal(b))
}

func TestHDifferentTagsDiffer(t *testing.T) {
	a := primitives.H("tag.a", []byte("x"))
	b := primitives.H("tag.b", []byte("x"))
	require.False(t, a.Equal(b))
}

func TestLERoundTrip(t *testing.T) {
	b8 := primitives.LE(0x0102030405060708, 8)
	require.Equal(t, uint64(0x0102030405060708), primitives.U64FromLE(b8))

	b4 := primitives.LE(0xdeadbeef, 4)
	require.Len(t, b4, 4)
	require.Equal(t, byte(0xef), b4[0])
}

func TestHashEqualConstantTime(t *testing.T) {
	var a, b primitives.Hash
	a[0] = 1
	require.False(t, a.Equal(b))
	b[0] = 1
	require.True(t, a.Equal(b))
}

func TestHashIsZero(t *testing.T) {
	var z primitives.Hash
	require.True(t, z.IsZero())
	z[31] = 1
	require.False(t, z.IsZero())
}
