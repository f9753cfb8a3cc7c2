package shell

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
)

// RunCommandAndGetOutput runs a shell command and returns its stdout and stderr as a string.
func RunCommandAndGetOutput(ctx context.Context, command Command) (string, error) {
	command.Logger.Debugf("Running command: %s", describe(command))

	allOutput := []string{}
	err := runCommandAndStoreOutput(ctx, command, &allOutput, &allOutput)

	return strings.Join(allOutput, "\n"), errors.WithStackTrace(err)
}

// RunCommandAndGetStdOut runs a shell command and returns solely its stdout (but not stderr) as a string.
// When the command fails, stderr is included in the returned error.
func RunCommandAndGetStdOut(ctx context.Context, command Command) (string, error) {
	command.Logger.Debugf("Running command: %s", describe(command))

	stdout := []string{}
	stderr := []string{}
	err := runCommandAndStoreOutput(ctx, command, &stdout, &stderr)

	output := strings.Join(stdout, "\n")
	if err != nil {
		if len(stderr) > 0 {
			err = fmt.Errorf("%w: %s", err, strings.Join(stderr, "\n"))
		}
		return output, errors.WithStackTrace(err)
	}

	return output, nil
}

// Return true if the OS has the given command installed
func CommandInstalled(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// CommandInstalledE returns an error if command is not installed
func CommandInstalledE(command string) error {
	if commandExists := CommandInstalled(command); !commandExists {
		err := fmt.Errorf("Command %s is not installed", command)
		return errors.WithStackTrace(err)
	}
	return nil
}
