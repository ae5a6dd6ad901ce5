package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	referencePrefix    = "STB"
	referenceRetries   = 5
	referenceSuffixMax = 10000
)

// ReferenceGenerator produces candidate transfer references
type ReferenceGenerator func() (string, error)

// NewReference returns STB followed by the current unix milliseconds and four random digits.
func NewReference() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(referenceSuffixMax))
	if err != nil {
		return "", fmt.Errorf("failed to generate reference suffix: %w", err)
	}
	return fmt.Sprintf("%s%d%04d", referencePrefix, time.Now().UnixMilli(), n.Int64()), nil
}
