package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hmacchallenge/pkg/i18n"
	"hmacchallenge/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.Resolve(i18n.MsgCmdVersionShort),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.Msgf(i18n.MsgCliVersionLine,
				version.Version, version.GitCommit, version.BuildDate, version.GoVersion))
		},
	}
}
