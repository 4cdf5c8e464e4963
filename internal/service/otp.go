package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpLength = 6

// GenerateOTPCode returns a fixed-length numeric code from crypto/rand.
func GenerateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}
