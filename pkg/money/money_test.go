package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "already two decimals", in: 10.25, expected: 10.25},
		{name: "half rounds up", in: 10.255, expected: 10.26},
		{name: "below half rounds down", in: 10.254, expected: 10.25},
		{name: "binary float artifact", in: 0.1 + 0.2, expected: 0.3},
		{name: "zero", in: 0, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(0))
	assert.True(t, IsValid(99.99))
	assert.True(t, IsValid(100))
	assert.False(t, IsValid(10.005))
	assert.False(t, IsValid(0.001))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		rate     float64
		expected float64
	}{
		{name: "ten percent", amount: 100, rate: 10, expected: 10.00},
		{name: "fraction rounds half up", amount: 33.33, rate: 15, expected: 5.00},
		{name: "odd cent boundary", amount: 0.05, rate: 10, expected: 0.01},
		{name: "zero amount", amount: 0, rate: 50, expected: 0},
		{name: "full rate", amount: 42.42, rate: 100, expected: 42.42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.amount, tt.rate))
		})
	}
}

func TestAddSub(t *testing.T) {
	assert.Equal(t, 0.3, Add(0.1, 0.2))
	assert.Equal(t, 35.00, Add(Add(10.00, 20.00), 5.00))
	assert.Equal(t, 0.0, Sub(35.00, 35.00))
	assert.Equal(t, -5.00, Sub(30.00, 35.00))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(10.00, 10.005, 0.01))
	assert.False(t, Equal(10.00, 10.02, 0.01))
	assert.True(t, Equal(0, 0, 0.01))
}
