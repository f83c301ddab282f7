package tokens

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/adityaraj/fuelflow/internal/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC)

func testGenerator() *Generator {
	return NewGeneratorWith(func() time.Time { return testNow }, rand.NewSource(1))
}

func TestOrderNumberFormat(t *testing.T) {
	gen := testGenerator()
	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{4}$`)

	for i := 0; i < 100; i++ {
		number := gen.OrderNumber()
		require.Regexp(t, pattern, number)
		require.Equal(t, "20250214", number[4:12])
	}
}

func TestTokenCodeFormat(t *testing.T) {
	gen := testGenerator()
	pattern := regexp.MustCompile(`^TKN-\d{8}-\d{5}$`)

	for i := 0; i < 100; i++ {
		code := gen.TokenCode()
		require.Regexp(t, pattern, code)
		require.Equal(t, "20250214", code[4:12])
	}
}

func TestGeneratorDeterministicWithSeed(t *testing.T) {
	first := testGenerator()
	second := testGenerator()

	require.Equal(t, first.OrderNumber(), second.OrderNumber())
	require.Equal(t, first.TokenCode(), second.TokenCode())
}

func TestCalculateQuantity(t *testing.T) {
	tests := []struct {
		amount float64
		price  float64
		want   float64
	}{
		{500, 100, 5},
		{333, 95.5, 3.49},
		{100, 96.72, 1.03},
		{1000, 89.62, 11.16},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CalculateQuantity(tt.amount, tt.price))
	}
}

func TestCalculateQuantityRoundTrip(t *testing.T) {
	amounts := []float64{100, 250, 333, 500, 999, 2000}
	prices := []float64{89.62, 95.5, 96.72, 100, 104.40}

	for _, amount := range amounts {
		for _, price := range prices {
			quantity := CalculateQuantity(amount, price)
			// Rounding liters to 2 decimals moves the implied amount by at
			// most half a paisa-per-liter worth of fuel.
			require.InDelta(t, amount, quantity*price, price*0.005+1e-9)
		}
	}
}

func TestExpiryTime(t *testing.T) {
	require.Equal(t, testNow.Add(60*time.Minute), ExpiryTime(testNow, DefaultExpiryMinutes))
	require.Equal(t, testNow.Add(15*time.Minute), ExpiryTime(testNow, 15))
}

func TestIsExpired(t *testing.T) {
	expiry := testNow.Add(10 * time.Minute)

	require.False(t, IsExpired(testNow, expiry))
	require.False(t, IsExpired(expiry.Add(-time.Second), expiry))
	require.True(t, IsExpired(expiry, expiry))
	require.True(t, IsExpired(expiry.Add(time.Second), expiry))
}

func TestIsExpiredMonotonic(t *testing.T) {
	expiry := testNow
	now := expiry

	for i := 0; i < 10; i++ {
		require.True(t, IsExpired(now, expiry))
		now = now.Add(time.Duration(i) * time.Minute)
	}
}

func TestTimeRemaining(t *testing.T) {
	tests := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"90 minutes out", testNow.Add(90 * time.Minute), "1h 30m left"},
		{"45 minutes out", testNow.Add(45 * time.Minute), "45 min left"},
		{"exactly an hour", testNow.Add(60 * time.Minute), "1h 0m left"},
		{"two hours five", testNow.Add(125 * time.Minute), "2h 5m left"},
		{"under a minute", testNow.Add(59 * time.Second), "0 min left"},
		{"already past", testNow.Add(-time.Minute), "Expired"},
		{"exactly now", testNow, "Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TimeRemaining(testNow, tt.expiry))
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	paid := &models.FuelToken{Status: models.TokenStatusPaid, ExpiresAt: testNow.Add(time.Hour)}
	require.Equal(t, models.TokenStatusPaid, EffectiveStatus(paid, testNow))

	// Stored status still reads paid, deadline has passed.
	stale := &models.FuelToken{Status: models.TokenStatusPaid, ExpiresAt: testNow.Add(-time.Minute)}
	require.Equal(t, models.TokenStatusExpired, EffectiveStatus(stale, testNow))

	used := &models.FuelToken{Status: models.TokenStatusUsed, ExpiresAt: testNow.Add(-time.Hour)}
	require.Equal(t, models.TokenStatusUsed, EffectiveStatus(used, testNow))

	cancelled := &models.FuelToken{Status: models.TokenStatusCancelled, ExpiresAt: testNow.Add(time.Hour)}
	require.Equal(t, models.TokenStatusCancelled, EffectiveStatus(cancelled, testNow))
}
