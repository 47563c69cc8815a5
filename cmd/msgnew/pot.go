package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loopcontext/msgnew"
	"github.com/loopcontext/msgnew/internal/run"
)

func newPotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pot",
		Short: "Extract the project template (.pot) file",
		Long: `Pot (re)extracts the project's translatable strings into the conventional
template <lang_dir>/<name>.pot, or into --output if given. Unlike init, an
existing template is overwritten; that is the point of re-extraction.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd,
				"xgettext", "encoding", "copyright-holder", "bugs-email", "output")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPot(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("xgettext", "", "path to the xgettext utility")
	flags.String("encoding", "", "source encoding passed to xgettext (default UTF-8)")
	flags.StringP("copyright-holder", "c", "", "copyright holder recorded in the template")
	flags.StringP("bugs-email", "b", "", "address for msgid bug reports")
	flags.StringP("output", "o", "", "template destination (default: <lang_dir>/<name>.pot)")

	return cmd
}

func runPot(cmd *cobra.Command) error {
	domain, opts, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err = msgnew.DefaultOptions(opts)
	if err != nil {
		return err
	}
	if err := msgnew.LookupTool(opts.XGettext); err != nil {
		return err
	}

	dest := viper.GetString("output")
	if dest == "" {
		dest = domain.PotFile()
	}
	if err := os.MkdirAll(domain.LangDir, 0755); err != nil {
		return err
	}
	err = domain.WritePot(cmd.Context(), run.NewExec(), dest,
		opts.XGettext, opts.Encoding, opts.CopyrightHolder, opts.BugsEmail)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dest)
	return nil
}
