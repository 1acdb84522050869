package intkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCDLCM(t *testing.T) {
	cases := []struct {
		a, b, gcd, lcm int64
	}{
		{12, 18, 6, 36},
		{0, 5, 5, 0},
		{-12, 18, 6, 36},
		{7, 7, 7, 7},
	}
	for _, c := range cases {
		require.Equalf(t, c.gcd, GCD(c.a, c.b), "GCD(%d,%d)", c.a, c.b)
		require.Equalf(t, c.lcm, LCM(c.a, c.b), "LCM(%d,%d)", c.a, c.b)
	}
}

func TestGCDSliceLCMSlice(t *testing.T) {
	g, err := GCDSlice([]int64{8, 12, 20})
	require.NoError(t, err)
	require.Equal(t, int64(4), g)

	l, err := LCMSlice([]int64{4, 6, 10})
	require.NoError(t, err)
	require.Equal(t, int64(60), l)

	_, err = GCDSlice(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestExtendedEuclid(t *testing.T) {
	g, x, y := ExtendedEuclid(240, 46)
	require.Equal(t, int64(2), g)
	require.Equalf(t, g, 240*x+46*y, "bezout identity: 240*%d + 46*%d", x, y)
}

func TestModInverse(t *testing.T) {
	inv, ok := ModInverse(3, 11)
	require.True(t, ok)
	require.Equal(t, int64(1), (3*inv)%11)

	_, ok = ModInverse(2, 4)
	require.False(t, ok, "expected no inverse for ModInverse(2,4)")
}

func TestCRT(t *testing.T) {
	x, m, err := CRT([]int64{2, 3, 2}, []int64{3, 5, 7})
	require.NoError(t, err)
	require.Equal(t, int64(105), m)
	require.Equal(t, int64(2), x%3)
	require.Equal(t, int64(3), x%5)
	require.Equal(t, int64(2), x%7)
}
