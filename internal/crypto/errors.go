package crypto

import "errors"

var (
	// ErrHashingFailed is returned by [CredentialCodec.Hash] when the
	// underlying algorithm fails.
	ErrHashingFailed = errors.New("failed to hash password")

	// ErrPasswordTooLong is returned by [CredentialCodec.Hash] for passwords
	// longer than [MaxPasswordBytes].
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
)
