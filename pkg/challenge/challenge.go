// Package challenge derives short numeric response codes from a shared
// secret and a numeric challenge.
//
// The code is an RFC 4226 HOTP value in which the challenge stands in for the
// moving counter. Only the low 32 bits of the challenge reach the counter
// frame, so challenges that differ by a multiple of 2^32 share a code.
package challenge

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"hash"
	"strconv"
	"strings"
)

const (
	// Digits is the width of every generated code.
	Digits = 6
	// Modulo reduces the truncated hash to Digits decimal digits.
	Modulo = 1000000
	// DigestSize is the minimum digest length dynamic truncation can address.
	DigestSize = sha1.Size
)

// Generator computes response codes. The zero value uses HMAC-SHA1 and is
// safe for concurrent use; it holds no per-call state.
type Generator struct {
	// Hash constructs the digest underlying the HMAC. Nil selects SHA-1.
	Hash func() hash.Hash
}

var defaultGenerator Generator

// Generate returns the 6-digit response code for challenge under secret
// using HMAC-SHA1.
func Generate(secret []byte, challenge string) (string, error) {
	return defaultGenerator.Generate(secret, challenge)
}

// Compute returns the numeric response code for an already parsed seed
// using HMAC-SHA1.
func Compute(secret []byte, seed int64) (int, error) {
	return defaultGenerator.Compute(secret, seed)
}

// Generate parses challenge and returns its zero-padded response code.
func (g *Generator) Generate(secret []byte, challenge string) (string, error) {
	seed, err := ParseChallenge(challenge)
	if err != nil {
		return "", err
	}
	code, err := g.Compute(secret, seed)
	if err != nil {
		return "", err
	}
	return FormatCode(code), nil
}

// Compute returns the response code for seed in the range [0, Modulo).
func (g *Generator) Compute(secret []byte, seed int64) (int, error) {
	counter := Counter(seed)
	mac, err := g.newMAC(secret)
	if err != nil {
		return 0, err
	}
	if _, err := mac.Write(counter[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSignature, err)
	}
	sum := mac.Sum(nil)
	if len(sum) < DigestSize {
		return 0, fmt.Errorf("%w: digest is %d bytes, need at least %d", ErrSignature, len(sum), DigestSize)
	}
	return int(Truncate(sum) % Modulo), nil
}

func (g *Generator) hash() func() hash.Hash {
	if g != nil && g.Hash != nil {
		return g.Hash
	}
	return sha1.New
}

// newMAC keys the HMAC with secret. hmac.New panics instead of returning an
// error when the runtime forbids a key or hash (FIPS 140-only mode), so the
// panic is turned back into a classified error here.
func (g *Generator) newMAC(secret []byte) (mac hash.Hash, err error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: secret is empty", ErrKey)
	}
	defer func() {
		if r := recover(); r != nil {
			mac = nil
			err = classifyPanic(r)
		}
	}()
	return hmac.New(g.hash(), secret), nil
}

// fipsKeyPanic is the message prefix crypto/hmac panics with when FIPS
// 140-only mode rejects a key.
const fipsKeyPanic = "crypto/hmac: use of keys shorter than"

func classifyPanic(r any) error {
	msg := fmt.Sprint(r)
	if strings.HasPrefix(msg, fipsKeyPanic) {
		return fmt.Errorf("%w: %s", ErrKey, msg)
	}
	return fmt.Errorf("%w: %s", ErrAlgorithmUnavailable, msg)
}

// ParseChallenge parses s as a signed 64-bit decimal integer.
func ParseChallenge(s string) (int64, error) {
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return seed, nil
}

// Counter encodes seed as an 8-byte big-endian counter frame. The upper four
// bytes are always zero; bits of seed above 32 are dropped.
func Counter(seed int64) [8]byte {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[4:], uint32(seed))
	return buf
}

// Truncate applies RFC 4226 dynamic truncation to digest, which must be at
// least DigestSize bytes long. The result has its sign bit cleared.
func Truncate(digest []byte) uint32 {
	offset := int(digest[len(digest)-1] & 0x0F)
	value := binary.BigEndian.Uint32(digest[offset : offset+4])
	return value & 0x7FFFFFFF
}

// FormatCode renders code as a zero-padded decimal of Digits width.
func FormatCode(code int) string {
	return fmt.Sprintf("%0*d", Digits, code)
}
