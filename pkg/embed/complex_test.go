package karst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	karst "github.com/karstlang/karst/pkg/embed"
)

func initRuntime(t *testing.T) *karst.Runtime {
	t.Helper()
	rt, err := karst.Init()
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

func TestComplexNewDisplay(t *testing.T) {
	rt := initRuntime(t)

	c := karst.NewComplex(rt, karst.NewInteger(rt, 2), karst.NewInteger(rt, 1))
	assert.Equal(t, "2+1i", c.AsValue().String())
	assert.Equal(t, "(2+1i)", c.AsValue().Inspect())
}

func TestComplexRealImagRoundTrip(t *testing.T) {
	rt := initRuntime(t)

	c := karst.NewComplex(rt, karst.NewInteger(rt, 9), karst.NewInteger(rt, -4))

	r, err := karst.TryConvert[int64](c.Real())
	require.NoError(t, err)
	assert.Equal(t, int64(9), r)

	i, err := karst.TryConvert[int64](c.Imag())
	require.NoError(t, err)
	assert.Equal(t, int64(-4), i)
}

func TestComplexComponentFoldsIn(t *testing.T) {
	rt := initRuntime(t)

	// A complex is Numeric, so it is a valid component: no trap needed,
	// no panic, the parts fold into rectangular form.
	inner := karst.NewComplex(rt, karst.NewInteger(rt, 2), karst.NewInteger(rt, 1))
	c := karst.NewComplex(rt, inner, karst.NewInteger(rt, 3))
	assert.Equal(t, "2+4i", c.AsValue().String())

	i, err := karst.TryConvert[int64](c.Imag())
	require.NoError(t, err)
	assert.Equal(t, int64(4), i)
}

func TestComplexPolar(t *testing.T) {
	rt := initRuntime(t)

	c, err := karst.ComplexPolar(rt, karst.NewInteger(rt, 2), karst.NewInteger(rt, 3))
	require.NoError(t, err)

	assert.InDelta(t, 2.0, c.Abs(), 1e-12)
	assert.InDelta(t, 3.0, c.Arg(), 1e-12)
}

func TestComplexPolarRationalMagnitude(t *testing.T) {
	rt := initRuntime(t)

	// A rational magnitude is fine; the runtime condenses it to a float.
	rat, err := karst.NewRational(rt, 1, 2)
	require.NoError(t, err)
	c, err := karst.ComplexPolar(rt, rat, karst.NewFloat(rt, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c.Abs(), 1e-12)
}

func TestComplexAbsExact(t *testing.T) {
	rt := initRuntime(t)

	c := karst.NewComplex(rt, karst.NewInteger(rt, 3), karst.NewInteger(rt, -4))
	assert.Equal(t, 5.0, c.Abs())
}

func TestComplexArgQuarterTurn(t *testing.T) {
	rt := initRuntime(t)

	c, err := karst.ComplexPolar(rt, karst.NewInteger(rt, 3), karst.NewFloat(rt, math.Pi/2))
	require.NoError(t, err)
	assert.Equal(t, 1.5707963267948966, c.Arg())
}

func TestComplexConjugate(t *testing.T) {
	rt := initRuntime(t)

	c := karst.NewComplex(rt, karst.NewInteger(rt, 1), karst.NewInteger(rt, 2))
	assert.Equal(t, "1-2i", c.Conjugate().AsValue().String())
}

func TestComplexDowncastError(t *testing.T) {
	rt := initRuntime(t)

	_, err := karst.TryConvert[karst.Complex](karst.NewStr(rt, "oops").AsValue())
	require.Error(t, err)

	var kerr *karst.Error
	require.ErrorAs(t, err, &kerr)
	assert.True(t, kerr.IsKind(karst.TypeErrorClass()))
	assert.Equal(t, "no implicit conversion of String into Complex", kerr.Message())
}
