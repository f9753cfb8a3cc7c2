package logging

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	red    = 31
	yellow = 33
	blue   = 36
	gray   = 37
	green  = 32
)

// AvsetFormatter renders entries as "[LEVEL] (action resourceGroup/vm)   message   (error)".
type AvsetFormatter struct {
	// DisableColors writes plain text without ANSI color codes around each line
	DisableColors bool
}

func (f *AvsetFormatter) isColored() bool {
	isColored := runtime.GOOS != "windows"

	return isColored && !f.DisableColors
}

// Format the log entry. Implements logrus.Formatter.
func (f *AvsetFormatter) Format(entry *logrus.Entry) ([]byte, error) {

	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	if f.isColored() {
		f.prependColored(b, entry.Level)
	}
	fmt.Fprintf(b, "[%s] ", strings.ToUpper(entry.Level.String()))

	if _, ok := entry.Data["action"]; ok {
		target := []string{fmt.Sprintf("%v", entry.Data["resourceGroup"])}
		if vm, ok := entry.Data["vm"]; ok {
			target = append(target, fmt.Sprintf("%v", vm))
		}

		fmt.Fprintf(b, "(%s %s)   ", entry.Data["action"], strings.Join(target, "/"))
	}

	fmt.Fprintf(b, "%s", entry.Message)

	if err, ok := entry.Data["error"]; ok {
		b.WriteString(fmt.Sprintf("   (%s)", err))
	}

	if f.isColored() {
		f.postpendColored(b)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

func (f *AvsetFormatter) prependColored(b *bytes.Buffer, lvl logrus.Level) {
	var levelColor int
	switch lvl {
	case logrus.DebugLevel, logrus.TraceLevel:
		levelColor = gray
	case logrus.WarnLevel:
		levelColor = yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = red
	case logrus.InfoLevel:
		levelColor = blue
	default:
		levelColor = green
	}

	fmt.Fprintf(b, "\x1b[%dm", levelColor)
}

func (f *AvsetFormatter) postpendColored(b *bytes.Buffer) {
	fmt.Fprint(b, "\x1b[0m")
}

// New builds the root logger. format is "json" or "text", level is any logrus level name.
func New(level string, format string, disableColors bool) (*logrus.Logger, error) {
	logger := logrus.New()

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&AvsetFormatter{DisableColors: disableColors})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logger, err
	}
	logger.SetLevel(lvl)

	return logger, nil
}
