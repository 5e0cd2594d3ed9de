package filters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hotelhub/hotel-booking/internal/domain/hotel"
)

// ValidationError reports filter values that could not be parsed, keyed by
// field name.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Details[f])
	}
	return "invalid filters: " + strings.Join(parts, "; ")
}

// Criteria is the parsed form of a Set. A nil bound is not applied.
type Criteria struct {
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinRating *decimal.Decimal
	MaxRating *decimal.Decimal
}

// ParseCriteria parses the declared numeric fields. Empty fields are left
// unbounded; unknown keys are ignored.
func ParseCriteria(s Set) (Criteria, error) {
	var c Criteria
	details := map[string]string{}

	parse := func(field string, dst **decimal.Decimal) {
		raw := strings.TrimSpace(s[field])
		if raw == "" {
			return
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			details[field] = fmt.Sprintf("%q is not a number", raw)
			return
		}
		if d.IsNegative() {
			details[field] = "must not be negative"
			return
		}
		*dst = &d
	}

	parse(MinPrice, &c.MinPrice)
	parse(MaxPrice, &c.MaxPrice)
	parse(MinRating, &c.MinRating)
	parse(MaxRating, &c.MaxRating)

	if c.MinPrice != nil && c.MaxPrice != nil && c.MinPrice.GreaterThan(*c.MaxPrice) {
		details[MaxPrice] = "must be greater than or equal to minPrice"
	}
	if c.MinRating != nil && c.MaxRating != nil && c.MinRating.GreaterThan(*c.MaxRating) {
		details[MaxRating] = "must be greater than or equal to minRating"
	}

	if len(details) > 0 {
		return Criteria{}, &ValidationError{Details: details}
	}
	return c, nil
}

// Empty reports whether no bound is set.
func (c Criteria) Empty() bool {
	return c.MinPrice == nil && c.MaxPrice == nil && c.MinRating == nil && c.MaxRating == nil
}

// Match tests a hotel's cheapest room against the price bounds and its
// average rating against the rating bounds. A hotel without rooms never
// satisfies a price bound.
func (c Criteria) Match(h hotel.Hotel) bool {
	if c.MinPrice != nil || c.MaxPrice != nil {
		price, ok := h.CheapestRoom()
		if !ok {
			return false
		}
		if c.MinPrice != nil && price.LessThan(*c.MinPrice) {
			return false
		}
		if c.MaxPrice != nil && price.GreaterThan(*c.MaxPrice) {
			return false
		}
	}

	if c.MinRating != nil || c.MaxRating != nil {
		rating := decimal.NewFromFloat(h.AverageRating)
		if c.MinRating != nil && rating.LessThan(*c.MinRating) {
			return false
		}
		if c.MaxRating != nil && rating.GreaterThan(*c.MaxRating) {
			return false
		}
	}
	return true
}

// Apply returns the hotels that match, preserving order.
func (c Criteria) Apply(hotels []hotel.Hotel) []hotel.Hotel {
	if c.Empty() {
		return hotels
	}
	out := make([]hotel.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if c.Match(h) {
			out = append(out, h)
		}
	}
	return out
}
