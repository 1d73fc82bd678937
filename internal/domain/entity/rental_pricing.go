package entity

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// RentalPricing holds the per-unit rental rates of a machine.
type RentalPricing struct {
	PerDay   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"per_day"`
	PerWeek  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"per_week"`
	PerMonth decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"per_month"`
}

// Duration tokens look like "3-week": a quantity and a unit.
var durationTokenPattern = regexp.MustCompile(`^(\d+)-(day|week|month)$`)

// ParseDurationToken splits a duration token into quantity and unit.
// Returns ok=false for anything that does not match "<N>-<day|week|month>".
func ParseDurationToken(token string) (n int64, unit string, ok bool) {
	m := durationTokenPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, "", false
	}
	return n, m[2], true
}

// IsValidDurationToken reports whether token is a well-formed duration token.
func IsValidDurationToken(token string) bool {
	_, _, ok := ParseDurationToken(token)
	return ok
}

// PriceFor computes the rental total for a duration token: quantity times
// the matching unit rate. Malformed or empty tokens price to zero rather
// than erroring; the same rule is applied at request time and at
// confirmation time so stored and materialized prices never drift.
func (p RentalPricing) PriceFor(token string) decimal.Decimal {
	n, unit, ok := ParseDurationToken(token)
	if !ok {
		return decimal.Zero
	}

	qty := decimal.NewFromInt(n)
	switch unit {
	case "day":
		return p.PerDay.Mul(qty)
	case "week":
		return p.PerWeek.Mul(qty)
	case "month":
		return p.PerMonth.Mul(qty)
	}
	return decimal.Zero
}
