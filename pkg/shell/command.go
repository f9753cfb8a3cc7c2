package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
)

// DefaultOutputMaxLineSize is the line limit used when Command.OutputMaxLineSize is not set.
// Exported templates can carry base64 payloads on a single line.
const DefaultOutputMaxLineSize = 16 * 1024 * 1024

// Command is a simpler struct for defining commands than Go's built-in Cmd.
type Command struct {
	Command           string            // The command to run
	Args              []string          // The args to pass to the command
	WorkingDir        string            // The working directory
	Env               map[string]string // Additional environment variables to set
	OutputMaxLineSize int               // The max line size of stdout and stderr (in bytes)
	Logger            *logrus.Entry
	SensitiveArgs     bool // If true, will not log the arguments to the command
}

// runCommandAndStoreOutput runs a shell command and stores each line from stdout and stderr in the given
// storedStdout and storedStderr variables, respectively. Output lines are logged at trace and debug level
// since commands like template exports print a lot.
func runCommandAndStoreOutput(ctx context.Context, command Command, storedStdout *[]string, storedStderr *[]string) error {
	cmd := exec.CommandContext(ctx, command.Command, command.Args...)
	cmd.Dir = command.WorkingDir
	cmd.Env = formatEnvVars(command)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	err = cmd.Start()
	if err != nil {
		return err
	}

	readErr := readStdoutAndStderr(command.Logger, stdout, stderr, storedStdout, storedStderr, command.OutputMaxLineSize)

	if err := cmd.Wait(); err != nil {
		return err
	}

	return readErr
}

// This function captures stdout and stderr into the given variables
func readStdoutAndStderr(logger *logrus.Entry, stdout io.ReadCloser, stderr io.ReadCloser, storedStdout *[]string, storedStderr *[]string, maxLineSize int) error {
	stdoutScanner := bufio.NewScanner(stdout)
	stderrScanner := bufio.NewScanner(stderr)

	if maxLineSize <= 0 {
		maxLineSize = DefaultOutputMaxLineSize
	}
	stdoutScanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	stderrScanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	wg := &sync.WaitGroup{}
	mutex := &sync.Mutex{}
	wg.Add(2)
	go readData(logger.Traceln, stdout, stdoutScanner, wg, mutex, storedStdout)
	go readData(logger.Debugln, stderr, stderrScanner, wg, mutex, storedStderr)
	wg.Wait()

	if err := stdoutScanner.Err(); err != nil {
		return err
	}

	if err := stderrScanner.Err(); err != nil {
		return err
	}

	return nil
}

func readData(log func(args ...interface{}), reader io.Reader, scanner *bufio.Scanner, wg *sync.WaitGroup, mutex *sync.Mutex, allOutput *[]string) {
	defer wg.Done()
	for scanner.Scan() {
		text := scanner.Text()
		log(text)

		mutex.Lock()
		*allOutput = append(*allOutput, text)
		mutex.Unlock()
	}

	// keep the pipe drained so the command can exit after a scan error
	if scanner.Err() != nil {
		_, _ = io.Copy(io.Discard, reader)
	}
}
