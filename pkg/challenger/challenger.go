package challenger

import (
	"errors"

	"hmacchallenge/pkg/challenge"
)

var ErrCodeMismatch = errors.New("challenger: code mismatch")

// Result is handed to the notifier for every successful challenge.
type Result struct {
	Challenge string
	Seed      int64
	Code      string
}

// Notifier presents outcomes to the user. Front ends (CLI, web form, tests)
// implement it; the challenger never formats text itself.
type Notifier interface {
	OnCode(Result)
	OnError(error)
}

type nopNotifier struct{}

func (nopNotifier) OnCode(Result) {}
func (nopNotifier) OnError(error) {}

// Challenger applies a length policy in front of the code generator and
// reports each outcome to a Notifier. The secret is supplied per call.
type Challenger struct {
	Policy    challenge.Policy
	Generator *challenge.Generator
	Notifier  Notifier
}

// Respond answers raw under secret.
func (c *Challenger) Respond(secret []byte, raw string) (Result, error) {
	notifier := c.notifier()
	if err := c.check(secret, raw); err != nil {
		notifier.OnError(err)
		return Result{}, err
	}
	seed, err := challenge.ParseChallenge(raw)
	if err != nil {
		notifier.OnError(err)
		return Result{}, err
	}
	code, err := c.generator().Compute(secret, seed)
	if err != nil {
		notifier.OnError(err)
		return Result{}, err
	}
	res := Result{
		Challenge: raw,
		Seed:      seed,
		Code:      challenge.FormatCode(code),
	}
	notifier.OnCode(res)
	return res, nil
}

// Check verifies that code answers raw under secret. A mismatch is reported
// as ErrCodeMismatch.
func (c *Challenger) Check(secret []byte, raw, code string) error {
	notifier := c.notifier()
	if err := c.check(secret, raw); err != nil {
		notifier.OnError(err)
		return err
	}
	ok, err := c.generator().Verify(secret, raw, code)
	if err != nil {
		notifier.OnError(err)
		return err
	}
	if !ok {
		notifier.OnError(ErrCodeMismatch)
		return ErrCodeMismatch
	}
	return nil
}

func (c *Challenger) check(secret []byte, raw string) error {
	if c == nil {
		return challenge.Policy{}.CheckSecret(secret)
	}
	if err := c.Policy.CheckSecret(secret); err != nil {
		return err
	}
	return c.Policy.CheckChallenge(raw)
}

func (c *Challenger) generator() *challenge.Generator {
	if c != nil && c.Generator != nil {
		return c.Generator
	}
	return &challenge.Generator{}
}

func (c *Challenger) notifier() Notifier {
	if c != nil && c.Notifier != nil {
		return c.Notifier
	}
	return nopNotifier{}
}
