package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{999, "₹999"},
		{1500, "₹1,500"},
		{99999, "₹99,999"},
		{150000, "₹1,50,000"},
		{12345678, "₹1,23,45,678"},
		{499.5, "₹500"},
		{-1500, "-₹1,500"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatCurrency(tt.amount))
	}
}

func TestFormatQuantity(t *testing.T) {
	require.Equal(t, "5.00 L", FormatQuantity(5))
	require.Equal(t, "3.49 L", FormatQuantity(3.49))
	require.Equal(t, "11.16 L", FormatQuantity(11.16))
}

func TestFormatDateTime(t *testing.T) {
	// 09:00 UTC is 14:30 IST.
	ts := time.Date(2025, 2, 5, 9, 0, 0, 0, time.UTC)
	require.Equal(t, "05 Feb, 02:30 pm", FormatDateTime(ts))

	// 20:30 UTC is 02:00 IST the next day.
	ts = time.Date(2025, 2, 5, 20, 30, 0, 0, time.UTC)
	require.Equal(t, "06 Feb, 02:00 am", FormatDateTime(ts))
}
