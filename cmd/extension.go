package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/realty/config"
	"go.uber.org/zap"
)

// EnvVerbose tells extensions that pms runs with -v.
const EnvVerbose = "REALTY_VERBOSE"

// extensionEnv returns the global flags as environment variables. Unset
// flags are left to the inherited environment.
func extensionEnv() []string {
	env := os.Environ()
	for name, value := range map[string]string{
		config.EnvDBDSN:    *dbDSN,
		config.EnvDBDriver: *dbDriver,
		config.EnvCurrency: *currency,
	} {
		if value != "" {
			env = append(env, name+"="+value)
		}
	}
	return append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
}

// RunExtension attempts to find and execute an external pms-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pms-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		zap.L().Debug("Extension not found in PATH", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
