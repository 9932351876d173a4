package challenge

import "crypto/subtle"

// Verify reports whether code is the response to challenge under secret.
// Generation errors are returned as is; a malformed code simply does not match.
func Verify(secret []byte, challenge, code string) (bool, error) {
	return defaultGenerator.Verify(secret, challenge, code)
}

// Verify compares code against the generated response in constant time.
func (g *Generator) Verify(secret []byte, challenge, code string) (bool, error) {
	want, err := g.Generate(secret, challenge)
	if err != nil {
		return false, err
	}
	if len(code) != Digits {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(code)) == 1, nil
}
