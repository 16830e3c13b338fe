// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
// At cost 10 a single hash takes well under 100ms on commodity hardware.
const DefaultCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// bcryptCodec is the bcrypt-backed implementation of [CredentialCodec].
type bcryptCodec struct {
	cost int
}

// NewBcryptCodec constructs a [CredentialCodec] with the given bcrypt cost.
// A cost of zero selects [DefaultCost]; values outside bcrypt's accepted
// range are clamped to it.
func NewBcryptCodec(cost int) CredentialCodec {
	switch {
	case cost == 0:
		cost = DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &bcryptCodec{cost: cost}
}

// Hash implements [CredentialCodec]. bcrypt generates a random 16-byte salt on
// every call and encodes it, together with the cost, into the returned string.
func (c *bcryptCodec) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hashed), nil
}

// Verify implements [CredentialCodec]. The comparison is constant-time;
// mismatches and malformed credentials both return false.
func (c *bcryptCodec) Verify(plaintext, credential string) bool {
	if credential == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
