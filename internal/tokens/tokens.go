// Package tokens holds the fuel token lifecycle rules: code generation,
// quantity math, expiry arithmetic and the derived display status.
package tokens

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/adityaraj/fuelflow/internal/models"
)

// DefaultExpiryMinutes is how long a freshly minted token stays redeemable.
const DefaultExpiryMinutes = 60

// Generator mints order numbers and token codes. Clock and randomness are
// injected so tests can pin both.
type Generator struct {
	now  func() time.Time
	rand *rand.Rand
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, rand.NewSource(time.Now().UnixNano()))
}

func NewGeneratorWith(now func() time.Time, src rand.Source) *Generator {
	return &Generator{
		now:  now,
		rand: rand.New(src),
	}
}

// Now exposes the generator's clock so callers derive expiry and display
// state from the same source the codes are stamped with.
func (g *Generator) Now() time.Time {
	return g.now()
}

// OrderNumber returns ORD-<YYYYMMDD>-<4 random digits>. Uniqueness rests on
// the date plus random suffix; there is no collision check against storage.
func (g *Generator) OrderNumber() string {
	return fmt.Sprintf("ORD-%s-%04d", g.dateStamp(), g.rand.Intn(10000))
}

// TokenCode returns TKN-<YYYYMMDD>-<5 random digits>, drawn from a numbering
// space independent of order numbers.
func (g *Generator) TokenCode() string {
	return fmt.Sprintf("TKN-%s-%05d", g.dateStamp(), g.rand.Intn(100000))
}

func (g *Generator) dateStamp() string {
	return g.now().UTC().Format("20060102")
}

// CalculateQuantity converts a rupee amount into liters at the given price,
// rounded to 2 decimal places. The rounded value is authoritative and stored;
// it is never re-derived from a possibly-changed catalog price.
// pricePerLiter must be positive; callers validate before getting here.
func CalculateQuantity(amount, pricePerLiter float64) float64 {
	return math.Round(amount/pricePerLiter*100) / 100
}

// ExpiryTime is the only place a token's expiry is decided. It is set once at
// creation and never extended.
func ExpiryTime(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

// IsExpired reports whether the deadline has passed as of now.
func IsExpired(now, expiresAt time.Time) bool {
	return !now.Before(expiresAt)
}

// TimeRemaining renders the countdown shown while a token is active. Partial
// minutes are floored, so 59 seconds left reads "0 min left", not "Expired".
func TimeRemaining(now, expiresAt time.Time) string {
	diff := expiresAt.Sub(now)
	if diff <= 0 {
		return "Expired"
	}

	minutes := int(diff / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%d min left", minutes)
	}

	return fmt.Sprintf("%dh %dm left", minutes/60, minutes%60)
}

// EffectiveStatus derives the status a token should display right now. A
// stored "paid" past its deadline reads as expired even though no row was
// updated; expiry is a lazy read-time view, not a background transition.
func EffectiveStatus(token *models.FuelToken, now time.Time) models.TokenStatus {
	if token.Status == models.TokenStatusPaid && IsExpired(now, token.ExpiresAt) {
		return models.TokenStatusExpired
	}
	return token.Status
}
