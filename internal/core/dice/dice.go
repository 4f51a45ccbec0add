// Package dice rolls polyhedral dice on top of the chance generator.
package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/core/seed"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = apperrors.New(apperrors.CodeDiceMissing, "at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice must have positive sides and count")

// ErrInvalidNotation indicates a roll string is not of the form NdM.
var ErrInvalidNotation = apperrors.New(apperrors.CodeDiceInvalidNotation, "dice notation must be #d#")

// Standard die sizes.
const (
	D4   = 4
	D6   = 6
	D8   = 8
	D10  = 10
	D12  = 12
	D20  = 20
	D30  = 30
	D100 = 100
)

// MaxCount caps the dice thrown for a single spec.
const MaxCount = 10000

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// String returns the spec in NdM notation.
func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

func (s Spec) validate() error {
	if s.Sides <= 0 || s.Count <= 0 || s.Count > MaxCount {
		return apperrors.WithMetadata(apperrors.CodeDiceInvalidSpec,
			fmt.Sprintf("invalid dice spec %s", s),
			map[string]string{"sides": strconv.Itoa(s.Sides), "count": strconv.Itoa(s.Count)})
	}
	return nil
}

// RollResult captures the results for a single dice spec.
type RollResult struct {
	Sides   int
	Results []int
	Total   int
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []RollResult
	Total int
}

// Request describes a request to roll one or more dice.
type Request struct {
	Dice []Spec
	Seed uint32
}

// Parse reads notation such as "3d6". Both numbers must be positive, the
// count at most MaxCount, and the letter is case-insensitive.
func Parse(notation string) (Spec, error) {
	count, sides, ok := strings.Cut(strings.ToLower(strings.TrimSpace(notation)), "d")
	if !ok || strings.Contains(sides, "d") {
		return Spec{}, invalidNotation(notation)
	}
	c, err := strconv.Atoi(count)
	if err != nil || c <= 0 || c > MaxCount {
		return Spec{}, invalidNotation(notation)
	}
	s, err := strconv.Atoi(sides)
	if err != nil || s <= 0 {
		return Spec{}, invalidNotation(notation)
	}
	return Spec{Sides: s, Count: c}, nil
}

func invalidNotation(notation string) error {
	return apperrors.WithMetadata(apperrors.CodeDiceInvalidNotation,
		fmt.Sprintf("invalid dice notation %q, want #d#", notation),
		map[string]string{"notation": notation})
}

// Die rolls one die with the given number of sides.
func Die(g *chance.Generator, sides int) (int, error) {
	if sides <= 0 {
		return 0, Spec{Sides: sides, Count: 1}.validate()
	}
	v, err := g.Natural(chance.IntegerOptions{Min: chance.Ptr(int64(1)), Max: chance.Ptr(int64(sides))})
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Roll rolls every spec in order using g.
//
// Specs are validated before any die is thrown. Result.Rolls appear in the
// same order as specs and Result.Total is the sum of every die.
func Roll(g *chance.Generator, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if err := spec.validate(); err != nil {
			return Result{}, err
		}
	}

	rolls := make([]RollResult, 0, len(specs))
	total := 0
	for _, spec := range specs {
		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			value, err := Die(g, spec.Sides)
			if err != nil {
				return Result{}, err
			}
			results[i] = value
			rollTotal += value
		}
		rolls = append(rolls, RollResult{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollDice rolls dice based on the provided request.
//
// # Determinism
//
// RollDice is deterministic with respect to the Seed field on Request.
// Given the same Seed and the same Dice slice (including order and values),
// RollDice will always produce the same Result.
//
// Example:
//
//	req := Request{
//	    Dice: []Spec{
//	        {Sides: 6, Count: 2}, // roll 2d6
//	        {Sides: 8, Count: 1}, // roll 1d8
//	    },
//	    Seed: 1,
//	}
//	result, err := RollDice(req)
func RollDice(request Request) (Result, error) {
	return Roll(chance.New(seed.Fixed(request.Seed)), request.Dice)
}

// RPG rolls notation and returns the individual dice. Dice are drawn in
// order but stored last to first.
func RPG(g *chance.Generator, notation string) ([]int, error) {
	spec, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	rolls := make([]int, spec.Count)
	for i := spec.Count - 1; i >= 0; i-- {
		v, err := Die(g, spec.Sides)
		if err != nil {
			return nil, err
		}
		rolls[i] = v
	}
	return rolls, nil
}

// Sum adds up rolls.
func Sum(rolls []int) int {
	total := 0
	for _, r := range rolls {
		total += r
	}
	return total
}
