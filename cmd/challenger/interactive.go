package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hmacchallenge/pkg/challenger"
	"hmacchallenge/pkg/i18n"
	"hmacchallenge/pkg/logging"
)

func newInteractiveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   i18n.Resolve(i18n.MsgCmdInteractiveShort),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, root)
		},
	}
}

// runInteractive answers one challenge per input line. Failures are reported
// through the notifier and do not end the session.
func runInteractive(cmd *cobra.Command, root *rootOptions) error {
	secret, policy, err := root.resolve(cmd)
	if err != nil {
		return err
	}
	// The secret must satisfy policy before any challenge is read.
	if err := policy.CheckSecret(secret); err != nil {
		return err
	}
	c := &challenger.Challenger{
		Policy: policy,
		Notifier: &challenger.WriterNotifier{
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		},
	}
	tty := stdinIsTerminal(cmd)
	if tty {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.Resolve(i18n.MsgCliInteractiveSecretNote))
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if tty {
			fmt.Fprint(cmd.ErrOrStderr(), i18n.Resolve(i18n.MsgCliPrompt))
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			if tty {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.Resolve(i18n.MsgCliInteractiveGoodbye))
			}
			return nil
		}
		if _, err := c.Respond(secret, line); err != nil {
			logging.Debugf("challenge %q rejected: %v", line, err)
		}
	}
	return scanner.Err()
}
