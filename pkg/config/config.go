package config

import (
	"bufio"
	"bytes"
	"encoding/base32"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"hmacchallenge/pkg/challenge"
)

const (
	maxFileSize  = 64 * 1024
	maxLengthOpt = 1024
)

var (
	errInvalidLine   = errors.New("unexpected line in secret file")
	errInvalidOption = errors.New("unrecognized config option")
	errMissingSecret = errors.New("missing shared secret")
	errFileTooLarge  = errors.New("config file exceeds 64KB limit")
)

// Options are the `" KEY value` lines following the secret.
type Options struct {
	SecretLength       int
	HasSecretLength    bool
	ChallengeLength    int
	HasChallengeLength bool
	Base32Secret       bool
	Additional         map[string]string
}

// Config is a parsed secret file: the secret on the first line, options after.
type Config struct {
	Secret  string
	Options Options
}

func Load(path string) (*Config, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	if fi.Size() > maxFileSize {
		return nil, errFileTooLarge
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, errFileTooLarge
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 2048), maxFileSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan config: %w", err)
	}
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, errMissingSecret
	}
	cfg := &Config{
		Secret: lines[0],
		Options: Options{
			Additional: map[string]string{},
		},
	}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "\" ") {
			return nil, errInvalidLine
		}
		if err := cfg.parseOption(line[2:]); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) parseOption(payload string) error {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return errInvalidOption
	}
	fields := strings.Fields(payload)
	key := fields[0]
	value := strings.TrimSpace(strings.TrimPrefix(payload, key))
	switch key {
	case "SECRET_LENGTH":
		n, err := parseLength(key, value)
		if err != nil {
			return err
		}
		c.Options.SecretLength = n
		c.Options.HasSecretLength = true
	case "CHALLENGE_LENGTH":
		n, err := parseLength(key, value)
		if err != nil {
			return err
		}
		c.Options.ChallengeLength = n
		c.Options.HasChallengeLength = true
	case "BASE32_SECRET":
		c.Options.Base32Secret = true
	default:
		c.Options.Additional[key] = value
	}
	return nil
}

func parseLength(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > maxLengthOpt {
		return 0, fmt.Errorf("invalid %s %q (expected 0..%d)", key, value, maxLengthOpt)
	}
	return n, nil
}

// SecretBytes returns the key material. Raw secrets are used byte for byte;
// BASE32_SECRET secrets are decoded, ignoring spaces and padding.
func (c *Config) SecretBytes() ([]byte, error) {
	if !c.Options.Base32Secret {
		return []byte(c.Secret), nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(c.Secret))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.TrimRight(normalized, "=")
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	data, err := enc.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("base32 decode failed: %w", err)
	}
	return data, nil
}

// Policy overlays the lengths set in the file onto base.
func (c *Config) Policy(base challenge.Policy) challenge.Policy {
	if c == nil {
		return base
	}
	if c.Options.HasSecretLength {
		base.SecretLength = c.Options.SecretLength
	}
	if c.Options.HasChallengeLength {
		base.ChallengeLength = c.Options.ChallengeLength
	}
	return base
}
