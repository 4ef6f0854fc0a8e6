package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/polyfloyd/glinfo"
	"github.com/polyfloyd/glinfo/platform"
)

// options is the fully resolved configuration of a single invocation.
type options struct {
	profile glinfo.Profile
	backend string

	// info enables the summary of each section, extensions enables the full
	// listing of extension names.
	info       bool
	extensions bool

	checks []string
	debug  bool
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("profile", glinfo.Legacy.String(), "The profile to query, valid values are: "+strings.Join(glinfo.Profiles, ", "))
	flags.BoolP("core", "c", false, "Use the core profile, shorthand for --profile core")
	flags.String("backend", platform.GLFW, "The backend used to create the context, valid values are: "+strings.Join(platform.Names, ", "))
	flags.BoolP("extensions", "e", false, "List all extensions")
	flags.BoolP("info", "i", false, "Show the driver information, this is the default unless -e is set")
	flags.StringArray("check", nil, "Check whether an extension is supported, may be repeated")
	flags.Bool("debug", false, "Show debug output about context creation")
	flags.String("config", "", "The config file to use (default $XDG_CONFIG_HOME/glinfo/config.yaml)")
}

// loadOptions resolves the options from the parsed flags, the environment and
// the config file in that order of precedence.
func loadOptions(cmd *cobra.Command, v *viper.Viper) (options, error) {
	flags := cmd.Flags()
	for _, key := range []string{"profile", "backend", "debug"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return options{}, errors.Wrapf(err, "could not bind flag %q", key)
		}
	}
	v.SetEnvPrefix("GLINFO")
	v.AutomaticEnv()

	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "glinfo"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return options{}, errors.Wrap(err, "could not read config")
		}
	}

	opts := options{
		backend: strings.ToLower(v.GetString("backend")),
		debug:   v.GetBool("debug"),
	}

	var err error
	if core, _ := flags.GetBool("core"); core {
		opts.profile = glinfo.Core
	} else if opts.profile, err = glinfo.ParseProfile(v.GetString("profile")); err != nil {
		return options{}, err
	}
	if !slices.Contains(platform.Names, opts.backend) {
		return options{}, errors.Newf("unknown backend %q, valid values are: %s", opts.backend, strings.Join(platform.Names, ", "))
	}

	info, _ := flags.GetBool("info")
	opts.extensions, _ = flags.GetBool("extensions")
	opts.info = info || !opts.extensions

	opts.checks, _ = flags.GetStringArray("check")
	return opts, nil
}
