package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"hmacchallenge/pkg/challenger"
	"hmacchallenge/pkg/i18n"
	"hmacchallenge/pkg/logging"
	"hmacchallenge/pkg/util"
)

type generateOptions struct {
	challenge string
	quiet     bool
	qr        bool
	qrInverse bool
	qrUTF8    bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [CHALLENGE]",
		Short: i18n.Resolve(i18n.MsgCmdGenerateShort),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.challenge == "" && len(args) > 0 {
				opts.challenge = args[0]
			}
			return runGenerate(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.challenge, "challenge", "c", "", i18n.Resolve(i18n.MsgCliFlagChallenge))
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, i18n.Resolve(i18n.MsgCliFlagQuiet))
	cmd.Flags().BoolVar(&opts.qr, "qr", false, i18n.Resolve(i18n.MsgCliFlagQR))
	cmd.Flags().BoolVar(&opts.qrInverse, "qr-inverse", false, i18n.Resolve(i18n.MsgCliFlagQRInverse))
	cmd.Flags().BoolVar(&opts.qrUTF8, "qr-utf8", false, i18n.Resolve(i18n.MsgCliFlagQRUTF8))
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	if opts.challenge == "" {
		return errors.New(i18n.Resolve(i18n.MsgCliNeedChallenge))
	}
	secret, policy, err := root.resolve(cmd)
	if err != nil {
		return err
	}
	c := &challenger.Challenger{
		Policy:   policy,
		Notifier: &challenger.WriterNotifier{Out: cmd.OutOrStdout(), Quiet: opts.quiet},
	}
	res, err := c.Respond(secret, opts.challenge)
	if err != nil {
		logging.Debugf("challenge %q rejected: %v", opts.challenge, err)
		return err
	}
	logging.Debugf("challenge %q answered", opts.challenge)
	if opts.qr {
		renderQR(cmd.OutOrStdout(), res.Code, opts)
	}
	return nil
}

func renderQR(w io.Writer, data string, opts *generateOptions) {
	qr, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		fmt.Fprintln(w, i18n.Msgf(i18n.MsgCliQRFail, err))
		return
	}
	if opts.qrUTF8 {
		fmt.Fprint(w, util.QRCodeToUTF8(qr.Bitmap(), opts.qrInverse))
		return
	}
	fmt.Fprint(w, strings.TrimRight(qr.ToSmallString(opts.qrInverse), "\n")+"\n")
}
