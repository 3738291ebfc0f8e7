// Package id generates and checks 8-digit account numbers.
package id

import "math/rand"

// numberLen is the fixed length of an account number.
const numberLen = 8

// maxRepeats is how often a single digit value may occur in a number.
const maxRepeats = 2

// NewAccountNumber draws 8-digit strings with independent random digits
// until one is found where no digit value appears more than twice.
func NewAccountNumber() string {
	for {
		var b [numberLen]byte
		for i := range b {
			b[i] = byte('0' + rand.Intn(10))
		}
		n := string(b[:])
		if Valid(n) {
			return n
		}
	}
}

// Valid reports whether number has the account-number shape: exactly 8
// digits, none occurring more than twice.
func Valid(number string) bool {
	if len(number) != numberLen {
		return false
	}
	var counts [10]int
	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		counts[c-'0']++
		if counts[c-'0'] > maxRepeats {
			return false
		}
	}
	return true
}
