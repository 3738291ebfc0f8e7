package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccountNumber_Property(t *testing.T) {
	// Every generated number is 8 digits with no digit repeated more
	// than twice.
	for i := 0; i < 5000; i++ {
		n := NewAccountNumber()
		assert.Len(t, n, 8)
		assert.True(t, Valid(n), "generated number %q must be valid", n)

		var counts [10]int
		for j := 0; j < len(n); j++ {
			assert.GreaterOrEqual(t, n[j], byte('0'))
			assert.LessOrEqual(t, n[j], byte('9'))
			counts[n[j]-'0']++
		}
		for d, c := range counts {
			assert.LessOrEqual(t, c, 2, "digit %d occurs %d times in %q", d, c, n)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"12345678", true},
		{"11223344", true},
		{"11123456", false}, // digit 1 three times
		{"1234567", false},  // too short
		{"123456789", false},
		{"1234567a", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.number), "number %q", tt.number)
	}
}
