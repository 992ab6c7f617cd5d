package helper

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type StyleFormatter struct{}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(entry.Level.String())
	function := "unknown"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}
	msg := entry.Message
	if len(entry.Data) > 0 {
		fields := make([]string, 0, len(entry.Data))
		for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
			fields = append(fields, fmt.Sprintf("%s=%v", k, entry.Data[k]))
		}
		msg = fmt.Sprintf("%s [%s]", msg, strings.Join(fields, " "))
	}
	return []byte(fmt.Sprintf("%s %-5s %s - %s\n", timestamp, level, function, msg)), nil
}

// SetLevel switches the logger to the named level ("trace", "debug", "info", ...).
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("helper.SetLevel: %w", err)
	}
	Log.SetLevel(level)
	return nil
}

func init() {
	Log.SetFormatter(&StyleFormatter{})
	Log.SetOutput(os.Stdout)
	Log.SetReportCaller(true)
	Log.SetLevel(logrus.InfoLevel)
}
