package challenge

import (
	"errors"
	"testing"
)

func TestPolicyCheckSecret(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		secret  []byte
		wantErr error
	}{
		{"reference ok", ReferencePolicy(), []byte("ABCDEFGHIJ"), nil},
		{"reference short", ReferencePolicy(), []byte("ABCDEFGHI"), ErrSecretLength},
		{"reference long", ReferencePolicy(), []byte("ABCDEFGHIJK"), ErrSecretLength},
		{"empty", ReferencePolicy(), nil, ErrNoSecret},
		{"unrestricted", Policy{}, []byte("x"), nil},
		{"unrestricted empty", Policy{}, []byte{}, ErrNoSecret},
		{"rfc4226 size", Policy{SecretLength: 20}, []byte("12345678901234567890"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.CheckSecret(tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckSecret() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && KindOf(err) != KindPolicy {
				t.Fatalf("unexpected kind %s", KindOf(err))
			}
		})
	}
}

func TestPolicyCheckChallenge(t *testing.T) {
	p := ReferencePolicy()
	if err := p.CheckChallenge("000000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Length is checked on the raw text, not the parsed value.
	if err := p.CheckChallenge("abcdef"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := p.CheckChallenge("-1")
	if !errors.Is(err, ErrChallengeLength) {
		t.Fatalf("expected ErrChallengeLength, got %v", err)
	}
	var lengthErr *LengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("expected *LengthError, got %T", err)
	}
	if lengthErr.Want != 6 || lengthErr.Got != 2 {
		t.Fatalf("unexpected lengths: %+v", lengthErr)
	}
	if err := (Policy{}).CheckChallenge("-1"); err != nil {
		t.Fatalf("unrestricted policy rejected challenge: %v", err)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != KindNone {
		t.Fatal("nil error should be KindNone")
	}
	if KindOf(errors.New("other")) != KindUnknown {
		t.Fatal("foreign error should be KindUnknown")
	}
	if KindOf(&LengthError{Err: ErrSecretLength}) != KindPolicy {
		t.Fatal("length error should be KindPolicy")
	}
	if KindOf(ErrSignature) != KindSignature {
		t.Fatal("ErrSignature should be KindSignature")
	}
}

func TestVerify(t *testing.T) {
	ok, err := Verify(testSecret, "000000", "864153")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	ok, err = Verify(testSecret, "000000", "864154")
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
	ok, err = Verify(testSecret, "000000", "86415")
	if err != nil || ok {
		t.Fatalf("short code should not match, got ok=%v err=%v", ok, err)
	}
	_, err = Verify(testSecret, "abc", "864153")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
