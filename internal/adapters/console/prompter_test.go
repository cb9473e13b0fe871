package console

import (
	"bytes"
	"context"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/anglecalc/internal/app"
	"github.com/jsamuelsen/anglecalc/internal/domain"
	"github.com/jsamuelsen/anglecalc/internal/ports"
)

func newTestPrompter(input string, showRadians bool) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer

	p := NewPrompter(PrompterConfig{
		In:          strings.NewReader(input),
		Out:         &out,
		ShowRadians: showRadians,
	})

	return p, &out
}

func TestNewPrompter_PanicsWithoutReader(t *testing.T) {
	assert.Panics(t, func() {
		NewPrompter(PrompterConfig{Out: io.Discard})
	})
}

func TestNewPrompter_PanicsWithoutWriter(t *testing.T) {
	assert.Panics(t, func() {
		NewPrompter(PrompterConfig{In: strings.NewReader("")})
	})
}

func TestPrompter_ReadAngle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *ports.AngleRequest
	}{
		{
			name:     "degrees",
			input:    "2\n45\n",
			expected: &ports.AngleRequest{Ordinal: 1, Unit: domain.Degrees, Value: 45},
		},
		{
			name:     "radians",
			input:    "1\n3.14159\n",
			expected: &ports.AngleRequest{Ordinal: 1, Unit: domain.Radians, Value: 3.14159},
		},
		{
			name:     "surrounding whitespace",
			input:    "  2 \n\t-90  \n",
			expected: &ports.AngleRequest{Ordinal: 1, Unit: domain.Degrees, Value: -90},
		},
		{
			name:     "windows line endings",
			input:    "2\r\n12.5\r\n",
			expected: &ports.AngleRequest{Ordinal: 1, Unit: domain.Degrees, Value: 12.5},
		},
		{
			name:     "out of range value is not checked here",
			input:    "2\n400\n",
			expected: &ports.AngleRequest{Ordinal: 1, Unit: domain.Degrees, Value: 400},
		},
		{
			name:     "last line without newline",
			input:    "1\n0",
			expected: &ports.AngleRequest{Ordinal: 1, Unit: domain.Radians, Value: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, false)

			req, err := p.ReadAngle(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestPrompter_ReadAngle_Prompts(t *testing.T) {
	p, out := newTestPrompter("2\n45\n", false)

	_, err := p.ReadAngle(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t,
		"Choose the unit for angle 2:\n1. Radians\n2. Degrees\nEnter angle value: ",
		out.String())
}

func TestPrompter_ReadAngle_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedField string
		expectedMsg   string
	}{
		{
			name:          "unknown menu choice",
			input:         "3\n45\n",
			expectedField: "choice",
			expectedMsg:   "must be one of: 1 2",
		},
		{
			name:          "empty menu choice",
			input:         "\n45\n",
			expectedField: "choice",
			expectedMsg:   "this field is required",
		},
		{
			name:          "non numeric value",
			input:         "2\nabc\n",
			expectedField: "value",
			expectedMsg:   "must be a number",
		},
		{
			name:          "NaN value",
			input:         "2\nNaN\n",
			expectedField: "value",
			expectedMsg:   "must be a finite number",
		},
		{
			name:          "infinite value",
			input:         "1\n-Inf\n",
			expectedField: "value",
			expectedMsg:   "must be a finite number",
		},
		{
			name:        "no input at all",
			input:       "",
			expectedMsg: "unexpected end of input",
		},
		{
			name:        "input ends before value",
			input:       "2\n",
			expectedMsg: "unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, false)

			req, err := p.ReadAngle(context.Background(), 1)
			require.Error(t, err)
			assert.Nil(t, req)
			require.True(t, domain.IsValidation(err), "unexpected error: %v", err)

			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.expectedField, validation.Field)
			assert.Equal(t, tt.expectedMsg, validation.Message)
		})
	}
}

func TestPrompter_ReadAngle_ChoiceRejectedBeforeValuePrompt(t *testing.T) {
	p, out := newTestPrompter("7\n", false)

	_, err := p.ReadAngle(context.Background(), 1)
	require.Error(t, err)
	assert.NotContains(t, out.String(), "Enter angle value")
}

func TestPrompter_ReadAngle_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := newTestPrompter("2\n45\n", false)

	_, err := p.ReadAngle(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_WriteAngle(t *testing.T) {
	tests := []struct {
		name        string
		degrees     float64
		showRadians bool
		expected    string
	}{
		{"degrees only", 45, false, "45.00 degrees\n"},
		{"rounded", -123.456, false, "-123.46 degrees\n"},
		{"with radians", 45, true, "45.00 degrees\n0.79 radians\n"},
		{"straight with radians", 180, true, "180.00 degrees\n3.14 radians\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle, err := domain.FromDegrees(tt.degrees)
			require.NoError(t, err)

			p, out := newTestPrompter("", tt.showRadians)

			require.NoError(t, p.WriteAngle(context.Background(), 1, angle))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestPrompter_WriteAngle_WriterError(t *testing.T) {
	p := NewPrompter(PrompterConfig{
		In:  strings.NewReader(""),
		Out: failingWriter{},
	})

	err := p.WriteAngle(context.Background(), 1, domain.StraightAngle)
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

// TestSession runs whole sessions through the application service.
func TestSession(t *testing.T) {
	t.Run("degrees then radians", func(t *testing.T) {
		p, out := newTestPrompter("2\n45\n1\n3.14159\n", false)

		svc := app.NewAngleService(app.AngleServiceConfig{Input: p, Output: p})
		require.NoError(t, svc.Run(context.Background()))

		// Answers are not echoed, so the first result follows the last prompt.
		assert.True(t, strings.HasSuffix(out.String(), "Enter angle value: 45.00 degrees\n180.00 degrees\n"),
			"unexpected transcript:\n%s", out.String())
	})

	t.Run("out of range value", func(t *testing.T) {
		p, out := newTestPrompter("2\n400\n", false)

		svc := app.NewAngleService(app.AngleServiceConfig{Input: p, Output: p, Count: 1})
		err := svc.Run(context.Background())
		require.Error(t, err)

		var outOfRange *domain.OutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, 400.0, outOfRange.Value)
		assert.NotContains(t, out.String(), "degrees\n")
	})

	t.Run("radians beyond a full turn", func(t *testing.T) {
		p, _ := newTestPrompter("2\n10\n1\n6.3\n", false)

		svc := app.NewAngleService(app.AngleServiceConfig{Input: p, Output: p})
		err := svc.Run(context.Background())
		require.Error(t, err)
		assert.True(t, domain.IsOutOfRange(err))
		assert.Contains(t, err.Error(), "reading angle 2")
	})

	t.Run("bad menu choice", func(t *testing.T) {
		p, _ := newTestPrompter("3\n", false)

		svc := app.NewAngleService(app.AngleServiceConfig{Input: p, Output: p})
		err := svc.Run(context.Background())
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		valid bool
	}{
		{"zero", 0, true},
		{"negative", -359.99, true},
		{"NaN", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validator().Var(tt.value, "finite")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
