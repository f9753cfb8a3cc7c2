package shell_test

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/optum/avsetctl/pkg/shell"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var logger *logrus.Entry

func TestMain(m *testing.M) {
	logs := logrus.New()
	logs.SetLevel(logrus.PanicLevel)
	logger = logs.WithField("environment", "unittest")

	os.Exit(m.Run())
}

func TestRunCommandAndGetStdOut_ShouldSeparateStreams(t *testing.T) {
	t.Parallel()

	out, err := shell.RunCommandAndGetStdOut(context.Background(), shell.Command{
		Command: "sh",
		Args:    []string{"-c", "echo '{}'; echo 'WARNING: preview' 1>&2"},
		Logger:  logger,
	})

	require.NoError(t, err)
	require.Equal(t, "{}", out)
}

func TestRunCommandAndGetStdOut_ShouldIncludeStderrInError(t *testing.T) {
	t.Parallel()

	_, err := shell.RunCommandAndGetStdOut(context.Background(), shell.Command{
		Command: "sh",
		Args:    []string{"-c", "echo 'ERROR: (ResourceNotFound) missing' 1>&2; exit 3"},
		Logger:  logger,
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "ResourceNotFound")

	code, err := shell.GetExitCodeForRunCommandError(err)
	require.NoError(t, err)
	require.Equal(t, 3, code)
}

func TestRunCommandAndGetOutput_ShouldHonorEnv(t *testing.T) {
	t.Parallel()

	out, err := shell.RunCommandAndGetOutput(context.Background(), shell.Command{
		Command: "sh",
		Args:    []string{"-c", "echo $AVSET_TEST_VALUE"},
		Env:     map[string]string{"AVSET_TEST_VALUE": "hello"},
		Logger:  logger,
	})

	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestRunCommandAndGetStdOut_ShouldStopOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := shell.RunCommandAndGetStdOut(ctx, shell.Command{
		Command: "sleep",
		Args:    []string{"5"},
		Logger:  logger,
	})

	require.Error(t, err)
}

func TestCommandInstalledE_ShouldFailForMissingCommand(t *testing.T) {
	t.Parallel()

	require.Error(t, shell.CommandInstalledE("avsetctl-missing-binary"))
	require.NoError(t, shell.CommandInstalledE("sh"))
}

// prints a JSON document whose single value line is n bytes long
func longLineScript(n int) []string {
	return []string{"-c", fmt.Sprintf(`printf '{\n    "customData": "'; head -c %d /dev/zero | tr '\0' 'a'; printf '"\n}\n'`, n)}
}

func TestRunCommandAndGetStdOut_ShouldReadLinesLongerThanScannerDefault(t *testing.T) {
	t.Parallel()

	out, err := shell.RunCommandAndGetStdOut(context.Background(), shell.Command{
		Command: "sh",
		Args:    longLineScript(100000),
		Logger:  logger,
	})

	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Len(t, lines[1], len(`    "customData": ""`)+100000)
}

func TestRunCommandAndGetStdOut_ShouldFailOnOversizedLineWithoutHanging(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := shell.RunCommandAndGetStdOut(ctx, shell.Command{
		Command:           "sh",
		Args:              longLineScript(512 * 1024),
		OutputMaxLineSize: 1024,
		Logger:            logger,
	})

	require.ErrorContains(t, err, bufio.ErrTooLong.Error())
	require.NoError(t, ctx.Err())
}
