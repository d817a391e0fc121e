// Package init generates a stencil configuration file with default values.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/stencil-cli/stencil/cli/config"
	"github.com/stencil-cli/stencil/cli/configure"
	"github.com/stencil-cli/stencil/cli/util"
)

// InitCtx contains information for the init command.
type InitCtx struct {
	// ForceMode overwrites an existing config without confirmation.
	ForceMode bool

	// reader is used to get user input.
	reader io.Reader
}

// FillCtx fills init context.
func FillCtx(initCtx *InitCtx) {
	initCtx.reader = os.Stdin
}

// checkExistingConfig checks stencil config for existence and asks for
// confirmation to overwrite. Returns an empty file name if init is
// cancelled by user.
func checkExistingConfig(initCtx *InitCtx) (string, error) {
	configName := configure.ConfigName

	if _, err := os.Stat(configName); err == nil {
		if initCtx.ForceMode {
			if err = os.Remove(configName); err != nil {
				return "", err
			}
		} else {
			confirmed, err := util.AskConfirm(initCtx.reader,
				fmt.Sprintf("%s already exists. Overwrite?", configName))
			if err != nil {
				return "", err
			}
			if !confirmed {
				log.Info("Init is cancelled by user.")
				return "", nil
			}
			if err = os.Remove(configName); err != nil {
				return "", err
			}
		}
	} else if !os.IsNotExist(err) {
		return "", err
	}
	return configName, nil
}

// Run writes a stencil config with default values to the current dir.
func Run(initCtx *InitCtx) error {
	if initCtx.reader == nil {
		initCtx.reader = os.Stdin
	}

	configName, err := checkExistingConfig(initCtx)
	if configName == "" {
		return err
	}

	cfg := config.Config{CliConfig: configure.GetDefaultCliOpts()}
	if err := util.WriteYaml(configName, &cfg); err != nil {
		return err
	}

	log.Infof("Configuration is written to '%s'", configName)

	return nil
}
