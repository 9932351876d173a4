package challenge

import "errors"

var (
	// ErrParse reports a challenge that is not a signed 64-bit decimal integer.
	ErrParse = errors.New("challenge: invalid challenge")
	// ErrKey reports a secret the HMAC primitive refuses to be keyed with.
	ErrKey = errors.New("challenge: invalid secret key")
	// ErrAlgorithmUnavailable reports that HMAC-SHA1 cannot be constructed in this runtime.
	ErrAlgorithmUnavailable = errors.New("challenge: hmac algorithm unavailable")
	// ErrSignature reports a failure while computing the digest itself.
	ErrSignature = errors.New("challenge: signature generation failed")

	// ErrNoSecret is returned by Policy when no secret was supplied at all.
	ErrNoSecret = errors.New("challenge: no secret specified")
	// ErrSecretLength is returned by Policy when the secret has the wrong length.
	ErrSecretLength = errors.New("challenge: secret length mismatch")
	// ErrChallengeLength is returned by Policy when the challenge has the wrong length.
	ErrChallengeLength = errors.New("challenge: challenge length mismatch")
)

// Kind classifies an error returned by this package.
type Kind int

const (
	KindNone Kind = iota
	KindParse
	KindKey
	KindAlgorithmUnavailable
	KindSignature
	KindPolicy
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindParse:
		return "parse"
	case KindKey:
		return "key"
	case KindAlgorithmUnavailable:
		return "algorithm-unavailable"
	case KindSignature:
		return "signature"
	case KindPolicy:
		return "policy"
	default:
		return "unknown"
	}
}

// KindOf reports which kind err belongs to. A nil error is KindNone and an
// error from outside this package is KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrKey):
		return KindKey
	case errors.Is(err, ErrAlgorithmUnavailable):
		return KindAlgorithmUnavailable
	case errors.Is(err, ErrSignature):
		return KindSignature
	case errors.Is(err, ErrNoSecret), errors.Is(err, ErrSecretLength), errors.Is(err, ErrChallengeLength):
		return KindPolicy
	default:
		return KindUnknown
	}
}
