package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hmacchallenge/pkg/challenge"
	"hmacchallenge/pkg/challenger"
	"hmacchallenge/pkg/i18n"
	"hmacchallenge/pkg/logging"
	"hmacchallenge/pkg/version"
)

type rootOptions struct {
	secret          string
	secretFile      string
	secretLength    int
	challengeLength int
	verbose         bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "challenger",
		Short:         i18n.Resolve(i18n.MsgCliShort),
		Long:          i18n.Resolve(i18n.MsgCliLong),
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.ConfigureDefault(); err != nil {
				return err
			}
			if opts.verbose {
				logging.SetLevel("debug")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetVersionTemplate("challenger {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.BoolP("help", "h", false, i18n.Resolve(i18n.MsgCliFlagHelp))
	flags.StringVarP(&opts.secret, "secret", "s", "", i18n.Resolve(i18n.MsgCliFlagSecret))
	flags.StringVarP(&opts.secretFile, "secret-file", "f", "", i18n.Resolve(i18n.MsgCliFlagSecretFile))
	flags.IntVar(&opts.secretLength, "secret-length", challenge.ReferenceSecretLength, i18n.Resolve(i18n.MsgCliFlagSecretLength))
	flags.IntVar(&opts.challengeLength, "challenge-length", challenge.ReferenceChallengeLength, i18n.Resolve(i18n.MsgCliFlagChallengeLength))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, i18n.Resolve(i18n.MsgCliFlagVerbose))

	cmd.AddCommand(
		newGenerateCmd(opts),
		newVerifyCmd(opts),
		newInteractiveCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// errorText prefers the localized message for errors the challenger knows
// about and falls back to the raw text for cobra and I/O errors.
func errorText(err error) string {
	if errors.Is(err, challenger.ErrCodeMismatch) || challenge.KindOf(err) != challenge.KindUnknown {
		return challenger.Message(err)
	}
	return err.Error()
}
