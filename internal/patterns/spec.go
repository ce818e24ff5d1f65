package patterns

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/anas-shakeel/graybmp/internal/bmp"
)

// Kind names a generator.
type Kind string

const (
	KindHorizontalGradient Kind = "horizontal-gradient"
	KindVerticalGradient   Kind = "vertical-gradient"
	KindCheckerboard       Kind = "checkerboard"
	KindCircles            Kind = "circles"
	KindResolution         Kind = "resolution"
	KindPhoto              Kind = "photo"
	KindUniform            Kind = "uniform"
	KindExpression         Kind = "expression"
)

// Kinds returns every known generator kind.
func Kinds() []Kind {
	return []Kind{
		KindHorizontalGradient, KindVerticalGradient, KindCheckerboard, KindCircles,
		KindResolution, KindPhoto, KindUniform, KindExpression,
	}
}

// Spec describes one output image: which generator produces it, its
// parameters and the file name it is written to.
type Spec struct {
	File string `yaml:"file"`
	Kind Kind   `yaml:"kind"`

	// Checkerboard square size; 0 means DefaultSquareSize.
	Size int `yaml:"size,omitempty"`
	// Uniform fill value; nil means DefaultUniformValue.
	Value *int `yaml:"value,omitempty"`
	// Expression source for KindExpression.
	Expr string `yaml:"expr,omitempty"`
}

// Validate checks the spec without generating anything.
func (s Spec) Validate() error {
	if s.File == "" {
		return fmt.Errorf("pattern %q: file name is required", s.Kind)
	}
	if !slices.Contains(Kinds(), s.Kind) {
		return fmt.Errorf("pattern %s: unknown kind %q (valid: %v)", s.File, s.Kind, Kinds())
	}
	if s.Size < 0 {
		return fmt.Errorf("pattern %s: size must not be negative", s.File)
	}
	if s.Value != nil && (*s.Value < 0 || *s.Value > 255) {
		return fmt.Errorf("pattern %s: value %d out of range [0,255]", s.File, *s.Value)
	}
	if s.Kind == KindExpression {
		if s.Expr == "" {
			return fmt.Errorf("pattern %s: expression is required", s.File)
		}
		if _, err := CompileExpression(s.Expr); err != nil {
			return fmt.Errorf("pattern %s: %w", s.File, err)
		}
	}
	return nil
}

// Generate runs the generator named by spec. rng is only drawn from by the
// photo pattern.
func Generate(spec Spec, width, height int, rng *rand.Rand) (*bmp.Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch spec.Kind {
	case KindHorizontalGradient:
		return HorizontalGradient(width, height), nil
	case KindVerticalGradient:
		return VerticalGradient(width, height), nil
	case KindCheckerboard:
		size := spec.Size
		if size == 0 {
			size = DefaultSquareSize
		}
		return Checkerboard(width, height, size), nil
	case KindCircles:
		return Circles(width, height), nil
	case KindResolution:
		return ResolutionTest(width, height), nil
	case KindPhoto:
		return SimulatedPhoto(width, height, rng), nil
	case KindUniform:
		value := DefaultUniformValue
		if spec.Value != nil {
			value = *spec.Value
		}
		return Uniform(width, height, uint8(value)), nil
	case KindExpression:
		return Expression(width, height, spec.Expr)
	}

	// Unreachable: Validate rejects unknown kinds.
	return nil, fmt.Errorf("unknown kind %q", spec.Kind)
}
