// Package configure locates and loads the stencil configuration file.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/mapstructure"

	"github.com/stencil-cli/stencil/cli/cmdcontext"
	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/placeholder"
	"github.com/stencil-cli/stencil/cli/util"
)

const (
	// ConfigName is the name of the stencil configuration file.
	ConfigName = "stencil.yaml"
	// appDirName is the subdirectory stencil uses under XDG base directories.
	appDirName = "stencil"

	defaultGitPrefix = "Git:"
	defaultEncoding  = "utf-8"
)

// GetDefaultCliOpts returns CliOpts filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		TemplatesDir:      filepath.Join(xdg.DataHome, appDirName, "templates"),
		UsePlaceholders:   false,
		Placeholders:      map[string]string{},
		PlaceholderRegexp: placeholder.DefaultPattern,
		Encoding:          defaultEncoding,
		GitPrefix:         defaultGitPrefix,
		GitRepositories:   []string{},
	}
}

// RepositoriesCacheDir returns the directory remote template repositories
// are cloned into.
func RepositoriesCacheDir() string {
	return filepath.Join(xdg.CacheHome, appDirName, "repositories")
}

// Cli fills the CLI context: finds the configuration file and
// remembers its directory.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.ConfigPath != "" {
		if !util.IsRegularFile(cmdCtx.Cli.ConfigPath) {
			return fmt.Errorf("configuration file %s does not exist", cmdCtx.Cli.ConfigPath)
		}
	} else {
		cmdCtx.Cli.ConfigPath = findConfigFile()
	}

	if cmdCtx.Cli.ConfigPath != "" {
		configDir, err := filepath.Abs(filepath.Dir(cmdCtx.Cli.ConfigPath))
		if err != nil {
			return fmt.Errorf("cannot determine config file directory: %s", err)
		}
		cmdCtx.Cli.ConfigDir = configDir
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cmdCtx.Cli.ConfigDir = cwd
	return nil
}

// findConfigFile searches for stencil.yaml in the current working
// directory first and in the user configuration directory after that.
// Empty string is returned when there is no configuration file,
// defaults apply in that case.
func findConfigFile() string {
	for _, configPath := range []string{
		ConfigName,
		filepath.Join(xdg.ConfigHome, appDirName, ConfigName),
	} {
		if util.IsRegularFile(configPath) {
			return configPath
		}
	}
	return ""
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result: cfg,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns stencil options from the config file located at
// configurePath. Empty configurePath means all defaults. Values missing
// from the file are filled with defaults too.
func GetCliOpts(configurePath string) (*config.CliOpts, error) {
	cliOpts := GetDefaultCliOpts()
	if configurePath == "" {
		return cliOpts, nil
	}

	rawConfigOpts, err := util.ParseYAML(configurePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stencil configuration: %s", err)
	}

	var cfg config.Config
	if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stencil configuration: %s", err)
	}
	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse stencil configuration: missing stencil section")
	}

	mergeWithDefaults(cfg.CliConfig, cliOpts)
	return cfg.CliConfig, nil
}

// mergeWithDefaults fills empty cliOpts fields with default values and
// expands environment variable references in the templates directory.
func mergeWithDefaults(cliOpts, defaults *config.CliOpts) {
	if cliOpts.TemplatesDir == "" {
		cliOpts.TemplatesDir = defaults.TemplatesDir
	} else {
		cliOpts.TemplatesDir = os.ExpandEnv(cliOpts.TemplatesDir)
	}
	if cliOpts.Placeholders == nil {
		cliOpts.Placeholders = map[string]string{}
	}
	if cliOpts.PlaceholderRegexp == "" {
		cliOpts.PlaceholderRegexp = defaults.PlaceholderRegexp
	}
	if cliOpts.Encoding == "" {
		cliOpts.Encoding = defaults.Encoding
	}
	if cliOpts.GitPrefix == "" {
		cliOpts.GitPrefix = defaults.GitPrefix
	}
	if cliOpts.GitRepositories == nil {
		cliOpts.GitRepositories = []string{}
	}
}
