package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loopcontext/msgnew"
	"github.com/loopcontext/msgnew/internal/run"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init LOCALE...",
		Short: "Create per-language catalogs from the project template",
		Long: `Init creates one catalog file per locale argument, refusing to overwrite
existing files. Locales take the form language[-region][.encoding], e.g.
"fr", "pt-BR" or "de_AT.UTF-8"; language and region are checked against the
ISO registries.

The template is the configured --pot-file if given, otherwise
<lang_dir>/<name>.pot if present, otherwise a temporary template extracted
with xgettext and discarded when the command finishes.

Examples:
  # Initialize French and Brazilian Portuguese catalogs
  msgnew init fr pt-BR

  # Initialize from an explicit template
  msgnew init --pot-file build/myapp.pot ja`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd,
				"xgettext", "msginit", "encoding",
				"pot-file", "copyright-holder", "bugs-email")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizePotFlag)
	flags.String("xgettext", "", "path to the xgettext utility")
	flags.String("msginit", "", "path to the msginit utility")
	flags.String("encoding", "", "character encoding for the catalogs (default UTF-8)")
	flags.StringP("pot-file", "p", "", "template file to initialize from (alias: --pot)")
	flags.StringP("copyright-holder", "c", "", "copyright holder recorded in an extracted template")
	flags.StringP("bugs-email", "b", "", "address for msgid bug reports in an extracted template")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	domain, opts, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err = msgnew.ResolveOptions(opts)
	if err != nil {
		return err
	}
	locales, err := msgnew.ParseLocales(args)
	if err != nil {
		return err
	}

	runner := run.NewExec()
	locator := &msgnew.TemplateLocator{Domain: domain, Options: opts, Runner: runner}
	defer locator.Cleanup()
	potFile, err := locator.Locate(cmd.Context())
	if err != nil {
		return err
	}

	gen := &msgnew.Initializer{Domain: domain, Options: opts, Runner: runner}
	_, err = gen.Init(cmd.Context(), potFile, locales)
	return err
}

// loadConfig assembles the project manifest and the raw options, with the
// manifest supplying authorship defaults when the flags leave them unset.
func loadConfig() (*msgnew.TextDomain, msgnew.Options, error) {
	domain, err := msgnew.LoadTextDomain(viper.GetString("textdomain"))
	if err != nil {
		return nil, msgnew.Options{}, err
	}
	opts := msgnew.Options{
		XGettext:        viper.GetString("xgettext"),
		MsgInit:         viper.GetString("msginit"),
		MsgMerge:        viper.GetString("msgmerge"),
		Encoding:        viper.GetString("encoding"),
		POTFile:         viper.GetString("pot-file"),
		CopyrightHolder: viper.GetString("copyright-holder"),
		BugsEmail:       viper.GetString("bugs-email"),
	}
	if opts.CopyrightHolder == "" {
		opts.CopyrightHolder = domain.CopyrightHolder
	}
	if opts.BugsEmail == "" {
		opts.BugsEmail = domain.BugsEmail
	}
	return domain, opts, nil
}
