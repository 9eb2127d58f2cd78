package logging

/**
 * log.go - logging wrapper
 */

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

/**
 * Logging initialize
 */
func init() {
	logrus.SetFormatter(new(Formatter))
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetOutput(os.Stdout)
}

/**
 * Configure sets output and level.
 * Output is "stdout", "stderr" or a file path rotated by lumberjack.
 */
func Configure(output string, level string) error {

	logrus.SetOutput(Output(output))

	if level == "" {
		return nil
	}

	l, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}

	logrus.SetLevel(l)
	return nil
}

/**
 * Output resolves an output name to a writer
 */
func Output(output string) io.Writer {
	switch output {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   output,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, //days
		Compress:   true,
	}
}

/**
 * Formatter writes one line per entry:
 * time [LEVEL] (name): message key=value ...
 */
type Formatter struct{}

/**
 * Format entry
 */
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {

	b := &bytes.Buffer{}

	name, ok := entry.Data["name"]
	if !ok {
		name = "default"
	}

	fmt.Fprintf(b, "%s [%-5.5s] (%s): %s", entry.Time.Format("2006-01-02 15:04:05"), strings.ToUpper(entry.Level.String()), name, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "name" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

/**
 * Add logger name as field var
 */
func For(name string) *logrus.Entry {
	return logrus.WithField("name", name)
}
