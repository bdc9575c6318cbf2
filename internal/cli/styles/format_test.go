package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/onramp/internal/cli/styles"
)

func ptr[T any](v T) *T { return &v }

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "N/A"},
		{"trillions", ptr(2.346e12), "2.35T"},
		{"billions", ptr(1.5e9), "1.5B"},
		{"millions", ptr(12_340_000.0), "12.34M"},
		{"thousands", ptr(1000.0), "1K"},
		{"negative millions", ptr(-3.2e6), "-3.2M"},
		{"plain", ptr(999.999), "1,000"},
		{"two decimals", ptr(12.3456), "12.35"},
		{"tiny keeps four significant digits", ptr(0.000123456), "0.0001235"},
		{"zero", ptr(0.0), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatNumber(tt.in))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "N/A"},
		{"large", ptr(65432.1), "$65,432.10"},
		{"millions", ptr(1234567.891), "$1,234,567.89"},
		{"cents", ptr(0.5), "$0.50"},
		{"sub cent", ptr(0.00001234567), "$0.00001235"},
		{"zero", ptr(0.0), "$0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatPrice(tt.in))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "N/A", styles.FormatPercentage(nil))
	assert.Equal(t, "▲ 2.35%", styles.FormatPercentage(ptr(2.345678)))
	assert.Equal(t, "▲ 0.00%", styles.FormatPercentage(ptr(0.0)))
	assert.Equal(t, "▼ -1.20%", styles.FormatPercentage(ptr(-1.2)))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "N/A", styles.FormatInt(nil))
	assert.Equal(t, "42", styles.FormatInt(ptr(42)))
	assert.Equal(t, "1,234,567", styles.FormatInt(ptr(1234567)))
}
