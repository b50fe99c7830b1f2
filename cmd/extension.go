package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/phuslu/log"
)

// EnvConfigFile passes the configuration file path to extensions.
const EnvConfigFile = "HUD_CONFIG"

// RunExtension attempts to find and execute an external hud-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "hud-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Str("extension", name).Err(err).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(), EnvConfigFile+"="+*configFile)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
