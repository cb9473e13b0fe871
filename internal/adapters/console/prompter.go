// Package console implements the angle ports on top of a line-oriented
// terminal: it prompts for a unit and a value, and prints constructed angles.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsamuelsen/anglecalc/internal/domain"
	"github.com/jsamuelsen/anglecalc/internal/ports"
)

// Menu entries offered for the unit choice.
const (
	choiceRadians = "1"
	choiceDegrees = "2"
)

// Compile-time interface checks.
var (
	_ ports.AngleInput  = (*Prompter)(nil)
	_ ports.AngleOutput = (*Prompter)(nil)
)

// PrompterConfig holds configuration for creating a Prompter.
type PrompterConfig struct {
	// In is where answers are read from, one per line.
	In io.Reader

	// Out receives prompts and results.
	Out io.Writer

	// ShowRadians prints each angle in radians on a second line.
	ShowRadians bool
}

// Prompter asks for angles on a terminal.
type Prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	showRadians bool
}

// NewPrompter creates a new Prompter.
// Panics if In or Out is nil.
func NewPrompter(cfg PrompterConfig) *Prompter {
	if cfg.In == nil {
		panic("console: PrompterConfig.In is required")
	}
	if cfg.Out == nil {
		panic("console: PrompterConfig.Out is required")
	}

	return &Prompter{
		in:          bufio.NewScanner(cfg.In),
		out:         cfg.Out,
		showRadians: cfg.ShowRadians,
	}
}

// ReadAngle prompts for the unit and value of the angle at ordinal.
func (p *Prompter) ReadAngle(ctx context.Context, ordinal int) (*ports.AngleRequest, error) {
	var answer angleAnswer

	_, err := fmt.Fprintf(p.out, "Choose the unit for angle %d:\n%s. Radians\n%s. Degrees\n",
		ordinal, choiceRadians, choiceDegrees)
	if err != nil {
		return nil, fmt.Errorf("writing unit prompt: %w", err)
	}

	answer.Choice, err = p.readLine(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateFields(&answer, "Choice"); err != nil {
		return nil, err
	}

	if _, err := io.WriteString(p.out, "Enter angle value: "); err != nil {
		return nil, fmt.Errorf("writing value prompt: %w", err)
	}

	raw, err := p.readLine(ctx)
	if err != nil {
		return nil, err
	}

	answer.Value, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationErrorWithValue("value", "must be a number", raw)
	}

	if err := validateFields(&answer); err != nil {
		return nil, err
	}

	return &ports.AngleRequest{
		Ordinal: ordinal,
		Unit:    answer.unit(),
		Value:   answer.Value,
	}, nil
}

// WriteAngle prints the angle in degrees, and in radians when configured.
func (p *Prompter) WriteAngle(ctx context.Context, _ int, angle domain.Angle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(p.out, angle.String()); err != nil {
		return fmt.Errorf("writing angle: %w", err)
	}

	if p.showRadians {
		if _, err := fmt.Fprintln(p.out, angle.StringInRadians()); err != nil {
			return fmt.Errorf("writing angle: %w", err)
		}
	}

	return nil
}

// readLine returns the next line of input with surrounding space removed.
// Running out of input before an answer is a validation error.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", domain.NewValidationError("", "unexpected end of input")
	}

	return strings.TrimSpace(p.in.Text()), nil
}
