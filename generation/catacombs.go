package generation

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Numeric bases a catacomb can be laid out in
const (
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrConfiguration is returned for a base outside [MinBase, MaxBase]
	ErrConfiguration = errors.New("invalid catacomb configuration")
	// ErrFormat is returned for a numeral that is not a non-negative decimal integer
	ErrFormat = errors.New("invalid catacomb numeral")
)

// CatacombNumber is a number reached by appending one digit to the current number.
// Value is always the decimal representation.
type CatacombNumber struct {
	Value   string
	IsPrime bool
}

// NewCatacombNumber classifies value and wraps it
func NewCatacombNumber(value *big.Int) CatacombNumber {
	return CatacombNumber{
		Value:   value.String(),
		IsPrime: IsPrime(value),
	}
}

// SeedNumber builds the number a run starts from.
// The starting number is assumed to be prime; only its format is checked.
func SeedNumber(value string) (CatacombNumber, error) {
	if _, err := parseDecimal(value); err != nil {
		return CatacombNumber{}, err
	}
	return CatacombNumber{Value: value, IsPrime: true}, nil
}

// ValidateBase checks that base is usable for a catacomb
func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: base %d outside [%d, %d]", ErrConfiguration, base, MinBase, MaxBase)
	}
	return nil
}

// ComputeExtensions appends every digit of base to numeral and classifies the results.
// The result has exactly base entries, in ascending digit order.
func ComputeExtensions(numeral string, base int) ([]CatacombNumber, error) {
	if err := ValidateBase(base); err != nil {
		return nil, err
	}

	value, err := parseDecimal(numeral)
	if err != nil {
		return nil, err
	}

	shifted := new(big.Int).Mul(value, big.NewInt(int64(base)))
	extensions := make([]CatacombNumber, 0, base)
	candidate := new(big.Int)
	for d := 0; d < base; d++ {
		candidate.Add(shifted, big.NewInt(int64(d)))
		extensions = append(extensions, NewCatacombNumber(candidate))
	}

	return extensions, nil
}

// FormatInBase renders a decimal value as a numeral in base, using 0-9 and A-Z
func FormatInBase(value string, base int) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", err
	}

	n, err := parseDecimal(value)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(n.Text(base)), nil
}

func parseDecimal(numeral string) (*big.Int, error) {
	if numeral == "" {
		return nil, fmt.Errorf("%w: empty numeral", ErrFormat)
	}
	for _, r := range numeral {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not a decimal digit in %q", ErrFormat, r, numeral)
		}
	}

	value, ok := new(big.Int).SetString(numeral, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, numeral)
	}
	return value, nil
}
