package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hmacchallenge/pkg/challenge"
	"hmacchallenge/pkg/config"
	"hmacchallenge/pkg/i18n"
	"hmacchallenge/pkg/logging"
	"hmacchallenge/pkg/util"
)

const DefaultSecretFilename = ".hmac_challenge"

var (
	EnvSecret     = "HMAC_CHALLENGE_SECRET"
	EnvSecretPath = "HMAC_CHALLENGE_SECRET_FILE"
)

func defaultSecretPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultSecretFilename)
}

// resolve picks the secret and the length policy for this invocation.
// Secret precedence: --secret, $HMAC_CHALLENGE_SECRET, the secret file, then
// an interactive prompt when stdin is a terminal.
func (o *rootOptions) resolve(cmd *cobra.Command) ([]byte, challenge.Policy, error) {
	override := o.secret
	if override != "" {
		logging.Debugf("secret taken from --secret")
	} else if env := os.Getenv(EnvSecret); env != "" {
		logging.Debugf("secret taken from $%s", EnvSecret)
		override = env
	}

	cfg, err := o.loadConfig(override != "")
	if err != nil {
		return nil, challenge.Policy{}, err
	}
	policy := cfg.Policy(challenge.ReferencePolicy())
	flags := cmd.Flags()
	if flags.Changed("secret-length") {
		policy.SecretLength = o.secretLength
	}
	if flags.Changed("challenge-length") {
		policy.ChallengeLength = o.challengeLength
	}

	if override != "" {
		return []byte(override), policy, nil
	}
	if cfg != nil {
		secret, err := cfg.SecretBytes()
		if err != nil {
			return nil, policy, err
		}
		return secret, policy, nil
	}
	if stdinIsTerminal(cmd) {
		secret, err := promptSecret(cmd)
		if err != nil {
			return nil, policy, err
		}
		return secret, policy, nil
	}
	return nil, policy, challenge.ErrNoSecret
}

// secretFileError reports a secret file that could not be loaded.
type secretFileError struct {
	Path string
	Err  error
}

func (e *secretFileError) Error() string {
	return i18n.Msgf(i18n.MsgReadSecretFileFailed, e.Path, e.Err)
}

func (e *secretFileError) Unwrap() error { return e.Err }

// loadConfig returns nil without error when no secret file is configured and
// the default one does not exist. With policyOnly set the secret is already
// known, so a default file that fails to load is skipped.
func (o *rootOptions) loadConfig(policyOnly bool) (*config.Config, error) {
	path := o.secretFile
	explicit := path != ""
	if !explicit {
		if p := os.Getenv(EnvSecretPath); strings.TrimSpace(p) != "" {
			path = p
			explicit = true
		}
	}
	if !explicit {
		path = defaultSecretPath()
	}
	if path == "" {
		return nil, nil
	}
	expanded, err := util.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if !explicit && !util.FileExists(expanded) {
		return nil, nil
	}
	cfg, err := config.Load(expanded)
	if err != nil {
		if policyOnly && !explicit {
			logging.Warnf("ignoring secret file %s: %v", expanded, err)
			return nil, nil
		}
		logging.Debugf("load secret file %s: %v", expanded, err)
		return nil, &secretFileError{Path: expanded, Err: err}
	}
	logging.Debugf("secret file %s loaded", expanded)
	return cfg, nil
}
