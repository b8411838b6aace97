package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueFactor(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  string
	}{
		{"zero", 0, "N", "0.000 N"},
		{"unit range", 2.5, "N", "2.500 N"},
		{"milli", 0.0125, "N", "12.500 mN"},
		{"micro", 3e-6, "N", "3.000 uN"},
		{"nano", 8.2e-8, "N", "82.000 nN"},
		{"pico", 2.5e-11, "m", "25.000 pm"},
		{"below pico", 4e-15, "m", "4.000e-15 m"},
		{"kilo", 1500, "V", "1.500 kV"},
		{"giga", 8.99e9, "Nm2/C2", "8.990 GNm2/C2"},
		{"negative", -0.002, "N", "-2.000 mN"},
		{"infinite", math.Inf(1), "N", "+Inf N"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValueFactor(tt.value, tt.unit))
		})
	}
}

func TestFormatScientific(t *testing.T) {
	assert.Equal(t, "8.988e+09", FormatScientific(8.98755e9, 3))
	assert.Equal(t, "1.60e-19", FormatScientific(1.6022e-19, 2))
	assert.Equal(t, "1.000e+00", FormatScientific(1, -1))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "10", FormatCell(10))
	assert.Equal(t, "0", FormatCell(0))
	assert.Equal(t, "1.0000e-11", FormatCell(1e-11))
	assert.Equal(t, "1.0000e+22", FormatCell(1e22))
	assert.Equal(t, "0.25", FormatCell(0.25))
}
