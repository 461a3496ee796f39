package karst_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	karst "github.com/karstlang/karst/pkg/embed"
)

func TestRoundTripPrimitives(t *testing.T) {
	rt := initRuntime(t)

	t.Run("int64", func(t *testing.T) {
		v, err := rt.ToValue(int64(-42))
		require.NoError(t, err)
		got, err := karst.TryConvert[int64](v)
		require.NoError(t, err)
		assert.Equal(t, int64(-42), got)
	})

	t.Run("float64", func(t *testing.T) {
		v, err := rt.ToValue(3.25)
		require.NoError(t, err)
		got, err := karst.TryConvert[float64](v)
		require.NoError(t, err)
		assert.Equal(t, 3.25, got)
	})

	t.Run("bool", func(t *testing.T) {
		v, err := rt.ToValue(true)
		require.NoError(t, err)
		got, err := karst.TryConvert[bool](v)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("string", func(t *testing.T) {
		v, err := rt.ToValue("café")
		require.NoError(t, err)
		got, err := karst.TryConvert[string](v)
		require.NoError(t, err)
		assert.Equal(t, "café", got)
	})

	t.Run("bigint", func(t *testing.T) {
		huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
		v, err := rt.ToValue(huge)
		require.NoError(t, err)
		got, err := karst.TryConvert[*big.Int](v)
		require.NoError(t, err)
		assert.Zero(t, huge.Cmp(got))
	})

	t.Run("complex128", func(t *testing.T) {
		v, err := rt.ToValue(complex(1.5, -2.5))
		require.NoError(t, err)
		got, err := karst.TryConvert[complex128](v)
		require.NoError(t, err)
		assert.Equal(t, complex(1.5, -2.5), got)
	})
}

func TestBoxedPassThroughIdentity(t *testing.T) {
	rt := initRuntime(t)

	s := karst.NewStr(rt, "anchor")
	v, err := rt.ToValue(s)
	require.NoError(t, err)

	s2, err := karst.TryConvert[karst.Str](v)
	require.NoError(t, err)
	assert.True(t, s2.AsValue().Identical(s.AsValue()),
		"boxed values pass through unchanged, not copied")
}

func TestTryConvertMismatchMessages(t *testing.T) {
	rt := initRuntime(t)

	cases := []struct {
		name string
		run  func(karst.Value) error
		val  karst.Value
		want string
	}{
		{
			name: "int from string",
			run:  func(v karst.Value) error { _, err := karst.TryConvert[int64](v); return err },
			val:  karst.NewStr(rt, "x").AsValue(),
			want: "no implicit conversion of String into int64",
		},
		{
			name: "bool from nil",
			run:  func(v karst.Value) error { _, err := karst.TryConvert[bool](v); return err },
			val:  rt.Nil(),
			want: "no implicit conversion of NilClass into Boolean",
		},
		{
			name: "rational from integer",
			run:  func(v karst.Value) error { _, err := karst.TryConvert[karst.Rational](v); return err },
			val:  karst.NewInteger(rt, 1).AsValue(),
			want: "no implicit conversion of Integer into Rational",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run(tc.val)
			require.Error(t, err)
			var kerr *karst.Error
			require.ErrorAs(t, err, &kerr)
			assert.True(t, kerr.IsKind(karst.TypeErrorClass()))
			assert.Equal(t, tc.want, kerr.Message())
		})
	}
}

func TestTryConvertNeverPanics(t *testing.T) {
	rt := initRuntime(t)
	samples := tagSamples(t, rt)

	for name, v := range samples {
		assert.NotPanics(t, func() {
			_, _ = karst.TryConvert[int64](v)
			_, _ = karst.TryConvert[karst.Complex](v)
			_, _ = karst.TryConvert[string](v)
			_, _ = karst.TryConvert[karst.Match](v)
		}, "converting %s", name)
	}
}

func TestToValueForeignBox(t *testing.T) {
	rt := initRuntime(t)

	type host struct{ N int }
	v, err := rt.ToValue(&host{N: 7})
	require.NoError(t, err)
	assert.Equal(t, "Foreign", v.ClassName())

	back, err := rt.FromValue(v, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, back.(*host).N)
}

func TestToValueError(t *testing.T) {
	rt := initRuntime(t)

	v, err := rt.ToValue(assert.AnError)
	require.NoError(t, err)
	exc, ok := karst.ExceptionFromValue(v)
	require.True(t, ok)
	assert.Equal(t, assert.AnError.Error(), exc.Message())
}

func FuzzToValueRoundTrip(f *testing.F) {
	rt, err := karst.Init()
	if err != nil {
		f.Fatal(err)
	}
	defer rt.Close()

	f.Add(int64(0), 0.0, "", true)
	f.Add(int64(-1), 2.5, "text", false)

	f.Fuzz(func(t *testing.T, n int64, fl float64, s string, b bool) {
		for _, val := range []any{n, fl, s, b} {
			v, err := rt.ToValue(val)
			if err != nil {
				t.Fatalf("ToValue(%v): %v", val, err)
			}
			if _, err := rt.FromValue(v, nil); err != nil {
				t.Fatalf("FromValue(%v): %v", val, err)
			}
		}
	})
}
