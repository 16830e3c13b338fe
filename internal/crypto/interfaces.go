// Package crypto holds the password credential codec used by the
// authentication service.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_codec_mock.go -package=mock

// CredentialCodec turns plaintext passwords into storable credentials and
// checks plaintext passwords against them.
//
// The credential is self-contained: the salt and the work factor are embedded
// in it, so Verify needs nothing but the stored value.
type CredentialCodec interface {
	// Hash returns a freshly salted one-way credential for plaintext.
	// Hashing the same plaintext twice yields different credentials.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches credential. It returns false
	// for a malformed credential and never panics.
	Verify(plaintext, credential string) bool
}
