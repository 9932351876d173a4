package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hmacchallenge/pkg/challenger"
	"hmacchallenge/pkg/i18n"
	"hmacchallenge/pkg/logging"
)

type verifyOptions struct {
	quiet bool
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	opts := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify CHALLENGE CODE",
		Short: i18n.Resolve(i18n.MsgCmdVerifyShort),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return fmt.Errorf("%s: %w", i18n.Resolve(i18n.MsgCliVerifyArgs), err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, root, opts, args[0], args[1])
		},
	}
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, i18n.Resolve(i18n.MsgCliFlagQuiet))
	return cmd
}

func runVerify(cmd *cobra.Command, root *rootOptions, opts *verifyOptions, raw, code string) error {
	secret, policy, err := root.resolve(cmd)
	if err != nil {
		return err
	}
	c := &challenger.Challenger{Policy: policy}
	if err := c.Check(secret, raw, code); err != nil {
		logging.Infof("verification of challenge %q failed: %v", raw, err)
		return err
	}
	if !opts.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.Resolve(i18n.MsgCliVerifyMatch))
	}
	return nil
}
