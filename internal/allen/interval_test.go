package allen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		code ErrorCode
	}{
		{"discrete_range", func() error { _, err := Validate(Between[int, Discrete](1, 2)); return err }, ""},
		{"discrete_equal", func() error { _, err := Validate(Between[int, Discrete](2, 2)); return err }, ErrCodeEmptyInterval},
		{"discrete_reversed", func() error { _, err := Validate(Between[int, Discrete](3, 2)); return err }, ErrCodeEmptyInterval},
		{"discrete_from_max", func() error { _, err := Validate(From[int, Discrete](math.MaxInt)); return err }, ""},
		{"discrete_to_min", func() error { _, err := Validate(To[int, Discrete](math.MinInt)); return err }, ""},
		{"discrete_full", func() error { _, err := Validate(Full[int, Discrete]()); return err }, ""},
		{"continuous_point", func() error { _, err := Validate(Between[float64, Continuous](2, 2)); return err }, ErrCodeEmptyInterval},
		{"continuous_range", func() error { _, err := Validate(Between[float64, Continuous](2, 2.5)); return err }, ""},
		{"continuous_reversed", func() error { _, err := Validate(Between[float64, Continuous](3, 2)); return err }, ErrCodeEmptyInterval},
		{"continuous_infinities", func() error {
			_, err := Validate(Between[float64, Continuous](math.Inf(-1), math.Inf(1)))
			return err
		}, ""},
		{"nan_start", func() error { _, err := Validate(Between[float64, Continuous](math.NaN(), 2)); return err }, ErrCodeAmbiguousOrder},
		{"nan_from", func() error { _, err := Validate(From[float64, Continuous](math.NaN())); return err }, ErrCodeAmbiguousOrder},
		{"nan_to", func() error { _, err := Validate(To[float64, Discrete](math.NaN())); return err }, ErrCodeAmbiguousOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, CodeOf(err))
		})
	}
}

func TestValidate_KeepsInterval(t *testing.T) {
	iv := Between[int, Discrete](1, 9)
	n, err := Validate(iv)
	require.NoError(t, err)
	assert.Equal(t, iv, n.Interval())
	assert.Equal(t, "1..9", n.String())
}

func TestValidateFunc(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }

	_, err := ValidateFunc(Between[string, Discrete]("zz", "aaa"), Total(byLen))
	assert.NoError(t, err)

	_, err = ValidateFunc(Between[string, Discrete]("zz", "aa"), Total(byLen))
	assert.ErrorIs(t, err, ErrEmptyInterval)
}

func TestMustValidate_Panics(t *testing.T) {
	assert.PanicsWithValue(t,
		"allen: MustValidate(5..5): EMPTY_INTERVAL: interval has no extent; relations are undefined for empty intervals",
		func() { MustValidate(Between[int, Discrete](5, 5)) })

	assert.PanicsWithValue(t,
		"allen: MustValidate(5..=5): EMPTY_INTERVAL: interval has no extent; relations are undefined for empty intervals",
		func() { MustValidate(Between[int, Continuous](5, 5)) })

	assert.NotPanics(t, func() { MustValidate(Between[float64, Continuous](5, 6)) })
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, "2..5", Between[int, Discrete](2, 5).String())
	assert.Equal(t, "2..=5", Between[int, Continuous](2, 5).String())
	assert.Equal(t, "2..", From[int, Discrete](2).String())
	assert.Equal(t, "2..", From[int, Continuous](2).String())
	assert.Equal(t, "..5", To[int, Discrete](5).String())
	assert.Equal(t, "..=5", To[int, Continuous](5).String())
	assert.Equal(t, "..", Full[int, Discrete]().String())
	assert.Equal(t, "-Inf..=+Inf", Between[float64, Continuous](math.Inf(-1), math.Inf(1)).String())
}

func TestIntervalError(t *testing.T) {
	err := newEmptyIntervalError("s")
	assert.Equal(t, "EMPTY_INTERVAL: interval has no extent; relations are undefined for empty intervals (operand=s)", err.Error())
	assert.ErrorIs(t, err, ErrEmptyInterval)
	assert.NotErrorIs(t, err, ErrAmbiguousOrder)

	amb := newAmbiguousOrderError("", "interval start and end")
	assert.Equal(t, "AMBIGUOUS_ORDER: no definite order between interval start and end", amb.Error())
	assert.True(t, IsAmbiguousOrder(amb))

	assert.Equal(t, ErrorCode(""), CodeOf(assert.AnError))
}

func TestDomainKind(t *testing.T) {
	assert.Equal(t, KindDiscrete, DomainOf[Discrete]())
	assert.Equal(t, KindContinuous, DomainOf[Continuous]())

	for _, k := range []DomainKind{KindDiscrete, KindContinuous} {
		got, err := ParseDomainKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseDomainKind("dense")
	assert.Error(t, err)
}
