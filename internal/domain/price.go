package domain

import "fmt"

// PriceRange is a closed interval of prices in whole currency units.
// Values built with NewPriceRange always satisfy 0 <= Lower <= Upper.
type PriceRange struct {
	Lower int64 `json:"lower" yaml:"lower"`
	Upper int64 `json:"upper" yaml:"upper"`
}

// NewPriceRange validates the bounds and returns the range.
func NewPriceRange(lower, upper int64) (PriceRange, error) {
	if lower < 0 {
		return PriceRange{}, fmt.Errorf("%w: lower price must not be negative", ErrValidation)
	}
	if upper < lower {
		return PriceRange{}, fmt.Errorf("%w: upper price %d is below lower price %d", ErrValidation, upper, lower)
	}
	return PriceRange{Lower: lower, Upper: upper}, nil
}

// Overlaps reports whether the two closed intervals share at least one price.
// It is symmetric.
func (r PriceRange) Overlaps(other PriceRange) bool {
	return r.Lower <= other.Upper && other.Lower <= r.Upper
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price int64) bool {
	return r.Lower <= price && price <= r.Upper
}

func (r PriceRange) String() string {
	return fmt.Sprintf("$%d - $%d", r.Lower, r.Upper)
}
