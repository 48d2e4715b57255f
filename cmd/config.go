package cmd

import (
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bitranox/lib-list/pkg/errors"
)

var (
	cfg config
	vpr *viper.Viper
)

// Root config, fed by flags and the optional config file.
type config struct {
	LogLevel  string `mapstructure:"log-level"`
	Traceback bool   `mapstructure:"traceback"`

	// "info" command
	Format string `mapstructure:"format"`
}

func initConfig() {
	vpr = viper.New()

	// Config file
	if cfgFile != "" {
		vpr.SetConfigFile(cfgFile)
	} else {
		hd, err := homedir.Dir()
		if err != nil {
			errors.Fatal(log, errors.Wrap(err, "unable to find home directory"))
		}
		vpr.AddConfigPath(hd)
		vpr.SetConfigName(configFileName)
	}
	vpr.SetConfigType(configFileExt)

	// Bind cobra and viper together
	var flags []*pflag.Flag
	for _, cmd := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if f.Name != "config" {
				flags = append(flags, f)
			}
		})
	}
	for _, f := range flags {
		if err := vpr.BindPFlag(f.Name, f); err != nil {
			errors.Fatal(log, errors.Wrapv(err, "unable to bind flag", f.Name))
		}
	}

	// Read config
	if err := vpr.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			errors.Fatal(log, errors.Wrap(err, "unable to read config file"))
		}
	}

	if err := vpr.Unmarshal(&cfg, viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))); err != nil {
		errors.Fatal(log, errors.Wrap(err, "unable to decode config"))
	}
}
