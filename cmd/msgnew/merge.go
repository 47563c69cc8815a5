package main

import (
	"github.com/spf13/cobra"

	"github.com/loopcontext/msgnew"
	"github.com/loopcontext/msgnew/internal/run"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [LOCALE...]",
		Short: "Refresh existing catalogs against the template",
		Long: `Merge runs msgmerge over existing catalog files so they pick up strings
added to (or dropped from) the template. With no arguments every catalog in
<lang_dir> is merged; otherwise only the named locales, which must already
have catalogs.`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd,
				"xgettext", "msgmerge", "encoding",
				"pot-file", "copyright-holder", "bugs-email")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizePotFlag)
	flags.String("xgettext", "", "path to the xgettext utility")
	flags.String("msgmerge", "", "path to the msgmerge utility")
	flags.String("encoding", "", "encoding for a freshly extracted template (default UTF-8)")
	flags.StringP("pot-file", "p", "", "template file to merge against (alias: --pot)")
	flags.StringP("copyright-holder", "c", "", "copyright holder recorded in an extracted template")
	flags.StringP("bugs-email", "b", "", "address for msgid bug reports in an extracted template")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	domain, opts, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err = msgnew.DefaultOptions(opts)
	if err != nil {
		return err
	}
	// xgettext may be needed to extract a fresh template; msginit is not.
	for _, tool := range []string{opts.XGettext, opts.MsgMerge} {
		if err := msgnew.LookupTool(tool); err != nil {
			return err
		}
	}

	// No arguments means "merge everything in lang_dir".
	var locales []msgnew.Locale
	if len(args) > 0 {
		if locales, err = msgnew.ParseLocales(args); err != nil {
			return err
		}
	}

	runner := run.NewExec()
	locator := &msgnew.TemplateLocator{Domain: domain, Options: opts, Runner: runner}
	defer locator.Cleanup()
	potFile, err := locator.Locate(cmd.Context())
	if err != nil {
		return err
	}

	merger := &msgnew.Merger{Domain: domain, Options: opts, Runner: runner}
	_, err = merger.Merge(cmd.Context(), potFile, locales)
	return err
}
