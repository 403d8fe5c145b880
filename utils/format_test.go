package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1500, "LKR 1,500.00"},
		{250.5, "LKR 250.50"},
		{0, "LKR 0.00"},
		{1234567.89, "LKR 1,234,567.89"},
		{-825, "LKR -825.00"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
