package main

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const cmdName = "msgnew"

func newRootCmd() *cobra.Command {
	var configFile string
	rootCmd := &cobra.Command{
		Use:   cmdName + " COMMAND",
		Short: "Initialize and refresh gettext message catalogs",
		Long: `msgnew prepares per-language gettext catalogs for a project. It validates
locale arguments, locates or extracts the .pot template, and drives the GNU
gettext utilities (xgettext, msginit, msgmerge) to create or refresh the
catalog files.

Project layout (text domain name, catalog directory, file suffix, extraction
sources) comes from msgnew.yaml in the working directory; user defaults for
tool paths and authorship come from .msgnew.yaml or MSGNEW_* environment
variables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Parsing succeeded; errors from here on are ours to print.
			cmd.Root().SilenceUsage = true
			if err := initViperConfig(configFile); err != nil {
				return err
			}
			setVerboseMode(viper.GetInt("verbose"))
			return nil
		},
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"user configuration file (default: .msgnew.yaml in . or $HOME)")
	rootCmd.PersistentFlags().StringP("textdomain", "t", "",
		"project manifest path (default: msgnew.yaml)")
	rootCmd.PersistentFlags().CountP("verbose", "v",
		"increase verbosity (repeatable)")
	cobra.CheckErr(viper.BindPFlag("textdomain", rootCmd.PersistentFlags().Lookup("textdomain")))
	cobra.CheckErr(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newPotCmd())
	rootCmd.AddCommand(newMergeCmd())

	return rootCmd
}

// initViperConfig wires the user-level configuration: an optional
// .msgnew.yaml plus MSGNEW_* environment variables. A missing config file is
// fine; a broken one is not.
func initViperConfig(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("." + cmdName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix(strings.ToUpper(cmdName))
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configFile == "" {
			return nil
		}
		return err
	}
	return nil
}

func setVerboseMode(level int) {
	switch level {
	case 0:
		logrus.SetLevel(logrus.WarnLevel)
	case 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// bindFlags registers a command's flags with viper just before the command
// runs, so config-file and environment values act as flag defaults. Binding
// at construction would let sibling commands shadow each other's keys.
func bindFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// normalizePotFlag lets --pot stand in for --pot-file.
func normalizePotFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "pot" {
		name = "pot-file"
	}
	return pflag.NormalizedName(name)
}
