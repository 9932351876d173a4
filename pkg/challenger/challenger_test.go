package challenger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"hmacchallenge/pkg/challenge"
)

type recordingNotifier struct {
	codes  []Result
	errors []error
}

func (r *recordingNotifier) OnCode(res Result) { r.codes = append(r.codes, res) }
func (r *recordingNotifier) OnError(err error) { r.errors = append(r.errors, err) }

var secret = []byte("ABCDEFGHIJ")

func TestRespondSuccess(t *testing.T) {
	rec := &recordingNotifier{}
	c := &Challenger{Policy: challenge.ReferencePolicy(), Notifier: rec}
	res, err := c.Respond(secret, "000000")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if res.Code != "864153" || res.Seed != 0 || res.Challenge != "000000" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(rec.codes) != 1 || len(rec.errors) != 0 {
		t.Fatalf("unexpected notifications: %+v", rec)
	}
}

func TestRespondPolicyViolations(t *testing.T) {
	tests := []struct {
		name      string
		secret    []byte
		challenge string
		wantErr   error
	}{
		{"short challenge", secret, "123", challenge.ErrChallengeLength},
		{"short secret", []byte("ABC"), "000000", challenge.ErrSecretLength},
		{"no secret", nil, "000000", challenge.ErrNoSecret},
		{"not a number", secret, "12a456", challenge.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingNotifier{}
			c := &Challenger{Policy: challenge.ReferencePolicy(), Notifier: rec}
			_, err := c.Respond(tt.secret, tt.challenge)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(rec.errors) != 1 || len(rec.codes) != 0 {
				t.Fatalf("unexpected notifications: %+v", rec)
			}
		})
	}
}

func TestRespondUnrestrictedPolicy(t *testing.T) {
	c := &Challenger{}
	res, err := c.Respond(secret, "-1")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if res.Code != "719172" || res.Seed != -1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestNilChallenger(t *testing.T) {
	var c *Challenger
	res, err := c.Respond(secret, "4294967296")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if res.Code != "864153" {
		t.Fatalf("unexpected code %s", res.Code)
	}
	if _, err := c.Respond(nil, "0"); !errors.Is(err, challenge.ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	rec := &recordingNotifier{}
	c := &Challenger{Policy: challenge.ReferencePolicy(), Notifier: rec}
	if err := c.Check(secret, "000000", "864153"); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if err := c.Check(secret, "000000", "000000"); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}
	if err := c.Check(secret, "abcdef", "000000"); !errors.Is(err, challenge.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if len(rec.errors) != 2 {
		t.Fatalf("expected 2 error notifications, got %d", len(rec.errors))
	}
}

func TestWriterNotifier(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	var out, errOut bytes.Buffer
	c := &Challenger{
		Policy:   challenge.ReferencePolicy(),
		Notifier: &WriterNotifier{Out: &out, Err: &errOut},
	}
	if _, err := c.Respond(secret, "002076"); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Result: 000758" {
		t.Fatalf("unexpected output %q", got)
	}
	_, _ = c.Respond(secret, "abcdef")
	_, _ = c.Respond(secret, "12")
	_ = c.Check(secret, "000000", "111111")
	want := "Input is NaN\nInput length is not 6\ncode mismatch\n"
	if errOut.String() != want {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestWriterNotifierQuiet(t *testing.T) {
	var out bytes.Buffer
	c := &Challenger{Notifier: &WriterNotifier{Out: &out, Quiet: true}}
	if _, err := c.Respond(secret, "0"); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if out.String() != "864153\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
