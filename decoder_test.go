package endf

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/endf/field"
)

type conformanceCase struct {
	Field  string `yaml:"field"`
	Value  string `yaml:"value"`
	Reason string `yaml:"reason"`
}

type conformanceSuite struct {
	Descriptor field.Descriptor  `yaml:"descriptor"`
	Cases      []conformanceCase `yaml:"cases"`
}

func loadConformance(t *testing.T) []conformanceSuite {
	t.Helper()

	data, err := os.ReadFile("testdata/conformance.yaml")
	require.NoError(t, err)

	var suites []conformanceSuite
	err = yaml.Unmarshal(data, &suites)
	require.NoError(t, err)
	require.NotEmpty(t, suites)

	return suites
}

// raw right justifies a case's field to the descriptor width.
func (c conformanceCase) raw(desc field.Descriptor) []byte {
	return []byte(fmt.Sprintf("%*s", desc.Width, c.Field))
}

// requireValue checks o holds the value written as text.
func requireValue(t *testing.T, desc field.Descriptor, text string, o Outcome, msgAndArgs ...interface{}) {
	t.Helper()

	require.Equal(t, desc.Kind, o.Kind, msgAndArgs...)

	switch desc.Kind {
	case field.Integer:
		want, err := strconv.ParseInt(text, 10, 64)
		require.NoError(t, err, msgAndArgs...)
		require.Equal(t, want, o.Int, msgAndArgs...)
	case field.Real:
		want, err := strconv.ParseFloat(text, 64)
		require.NoError(t, err, msgAndArgs...)

		if math.IsNaN(want) {
			require.True(t, math.IsNaN(o.Float), msgAndArgs...)

			return
		}

		require.Equal(t, want, o.Float, msgAndArgs...)
		require.Equal(t, math.Signbit(want), math.Signbit(o.Float), msgAndArgs...)
	}
}

func TestConformance(t *testing.T) {
	for _, suite := range loadConformance(t) {
		suite := suite

		t.Run(suite.Descriptor.String(), func(t *testing.T) {
			for i, tc := range suite.Cases {
				tc := tc

				t.Run(fmt.Sprintf("[%d]%q", i, tc.Field), func(t *testing.T) {
					mark := oops.New("unexpected")

					raw := tc.raw(suite.Descriptor)
					o := Decode(suite.Descriptor, raw)

					t.Logf("%q -> %s\n", raw, spew.Sdump(o))

					if tc.Reason != "" {
						require.False(t, o.OK(), mark)
						require.Equal(t, tc.Reason, o.Reason().String(), mark)

						var de *field.DecodeError
						require.ErrorAs(t, o.Err, &de, mark)
						require.Equal(t, string(raw), de.Field, mark)

						return
					}

					require.NoError(t, o.Err, mark)
					requireValue(t, suite.Descriptor, tc.Value, o, mark)

					// Writing the value back and reading it again gives the
					// same value.
					data, err := Encode(suite.Descriptor, o)
					require.NoError(t, err, mark)
					require.Len(t, data, suite.Descriptor.Width, mark)

					again := Decode(suite.Descriptor, data)
					require.NoError(t, again.Err, mark)
					requireValue(t, suite.Descriptor, tc.Value, again, mark)
				})
			}
		})
	}
}

func TestConformanceConcurrent(t *testing.T) {
	suites := loadConformance(t)

	var wg sync.WaitGroup
	errs := make(chan error, 64)

	for w := 0; w < 8; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, suite := range suites {
				for _, tc := range suite.Cases {
					raw := tc.raw(suite.Descriptor)

					first := Decode(suite.Descriptor, raw)
					second := Decode(suite.Descriptor, raw)

					if first.OK() != second.OK() || first.Reason() != second.Reason() {
						errs <- fmt.Errorf("%q: %v != %v", raw, first.Err, second.Err)

						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestDecode(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		o := Decode(field.I11, []byte("       -  1"))
		require.True(t, o.OK())
		require.Equal(t, field.Integer, o.Kind)
		require.Equal(t, int64(-1), o.Int)
		require.Equal(t, field.Unknown, o.Reason())
	})

	t.Run("real", func(t *testing.T) {
		o := Decode(field.F110, []byte(" 1.23456+12"))
		require.True(t, o.OK())
		require.Equal(t, field.Real, o.Kind)
		require.Equal(t, 1.23456e12, o.Float)
	})

	t.Run("failure", func(t *testing.T) {
		o := Decode(field.F110, []byte("      1.2.3"))
		require.False(t, o.OK())
		require.Equal(t, field.ExtraSeparator, o.Reason())
		require.Equal(t, float64(0), o.Float)
	})

	t.Run("wrong width", func(t *testing.T) {
		o := Decode(field.I11, []byte("1"))
		require.Equal(t, field.WrongWidth, o.Reason())
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		o := Decode(field.Descriptor{Width: 11}, []byte("          1"))
		require.False(t, o.OK())
		require.True(t, Error.Has(o.Err))
		require.True(t, field.Error.Has(o.Err))
		require.Equal(t, field.Unknown, o.Reason())
	})
}

func TestEncode(t *testing.T) {
	data, err := Encode(field.I11, Outcome{Kind: field.Integer, Int: 9228})
	require.NoError(t, err)
	require.Equal(t, "       9228", string(data))

	data, err = Encode(field.F110, Outcome{Kind: field.Real, Float: -1.2345e-123})
	require.NoError(t, err)
	require.Equal(t, "-1.2345-123", string(data))

	_, err = Encode(field.I11, Outcome{Kind: field.Real, Float: 1})
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = Encode(field.Descriptor{}, Outcome{})
	require.Error(t, err)
}

func TestHelpers(t *testing.T) {
	type TC struct {
		name string
		fn   func() error
		Mark error
	}

	tcs := []TC{
		{
			name: "DecodeInteger",
			fn: func() error {
				v, err := DecodeInteger(" 1234567890", 11)
				if err != nil {
					return err
				}
				if v != 1234567890 {
					return fmt.Errorf("got %d", v)
				}

				return nil
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "DecodeReal",
			fn: func() error {
				v, err := DecodeReal("1.2345D+12 ", 11, 0)
				if err != nil {
					return err
				}
				if v != 1.2345e12 {
					return fmt.Errorf("got %v", v)
				}

				return nil
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "DecodeReal implied",
			fn: func() error {
				v, err := DecodeReal("      12345", 11, 3)
				if err != nil {
					return err
				}
				if v != 12.345 {
					return fmt.Errorf("got %v", v)
				}

				return nil
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "EncodeInteger",
			fn: func() error {
				s, err := EncodeInteger(-12, 11)
				if err != nil {
					return err
				}
				if s != "        -12" {
					return fmt.Errorf("got %q", s)
				}

				return nil
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "EncodeReal",
			fn: func() error {
				s, err := EncodeReal(12.34567, 11, 0)
				if err != nil {
					return err
				}
				if s != "   12.34567" {
					return fmt.Errorf("got %q", s)
				}

				return nil
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.NoError(t, tc.fn(), tc.Mark)
		})
	}

	t.Run("failures", func(t *testing.T) {
		_, err := DecodeInteger("          *", 11)
		require.Equal(t, field.UnrecognizedCharacter, field.ReasonOf(err))

		_, err = DecodeReal("         1E", 11, 0)
		require.Equal(t, field.IncompleteExponent, field.ReasonOf(err))

		_, err = EncodeInteger(123, 2)
		require.Equal(t, field.Overflow, field.ReasonOf(err))

		_, err = EncodeReal(1e300, 4, 0)
		require.Equal(t, field.Overflow, field.ReasonOf(err))
	})
}
