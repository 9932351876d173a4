package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hmacchallenge/pkg/i18n"
)

func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// promptSecret reads the secret from the terminal without echo.
var promptSecret = func(cmd *cobra.Command) ([]byte, error) {
	f := cmd.InOrStdin().(*os.File)
	fmt.Fprint(cmd.ErrOrStderr(), i18n.Resolve(i18n.MsgCliSecretPrompt))
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return secret, nil
}
