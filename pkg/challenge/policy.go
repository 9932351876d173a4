package challenge

import "fmt"

const (
	// ReferenceSecretLength is the secret length deployed verifiers expect.
	ReferenceSecretLength = 10
	// ReferenceChallengeLength is the challenge length deployed verifiers expect.
	ReferenceChallengeLength = 6
)

// Policy holds caller-side length rules. The generator itself accepts any
// non-empty secret and any parsable challenge; front ends apply a Policy
// before calling it. A zero length disables the corresponding check.
type Policy struct {
	SecretLength    int
	ChallengeLength int
}

// ReferencePolicy returns the 10-byte secret / 6-character challenge rules.
func ReferencePolicy() Policy {
	return Policy{
		SecretLength:    ReferenceSecretLength,
		ChallengeLength: ReferenceChallengeLength,
	}
}

// CheckSecret validates the length of secret.
func (p Policy) CheckSecret(secret []byte) error {
	if len(secret) == 0 {
		return ErrNoSecret
	}
	if p.SecretLength > 0 && len(secret) != p.SecretLength {
		return &LengthError{Err: ErrSecretLength, Want: p.SecretLength, Got: len(secret)}
	}
	return nil
}

// CheckChallenge validates the raw length of challenge, before parsing.
func (p Policy) CheckChallenge(challenge string) error {
	if p.ChallengeLength > 0 && len(challenge) != p.ChallengeLength {
		return &LengthError{Err: ErrChallengeLength, Want: p.ChallengeLength, Got: len(challenge)}
	}
	return nil
}

// LengthError carries the expected and actual lengths of a policy violation.
type LengthError struct {
	Err  error
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: want %d, got %d", e.Err, e.Want, e.Got)
}

func (e *LengthError) Unwrap() error { return e.Err }
