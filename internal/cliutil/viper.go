package cliutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variable of every flag:
	// --summaries-dir is read from STACKCI_SUMMARIES_DIR.
	EnvPrefix = "STACKCI"
	// ConfigEnv names an explicit config file; it must exist when set.
	ConfigEnv = "STACKCI_CONFIG"
)

var skipFlags = map[string]struct{}{"help": {}, "version": {}}

// ApplyViper fills flags that were not given on the command line from
// STACKCI_* environment variables or the config file. Applied values count as
// set, so they satisfy required flags.
func ApplyViper(cmd *cobra.Command, configFile string) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	configureConfigFile(v, configFile)

	fs := cmd.Flags()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := readConfigFile(v, configFile != ""); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var setErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if _, skip := skipFlags[f.Name]; skip || f.Changed || setErr != nil {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			setErr = fmt.Errorf("apply %s from environment/config: %w", f.Name, err)
		}
	})
	return setErr
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		if expanded, err := homedir.Expand(explicitPath); err == nil {
			explicitPath = expanded
		}
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "stackci"))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "stackci"))
	}
	return dirs
}
