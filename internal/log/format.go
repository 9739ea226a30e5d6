package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	callerKey       = "caller"
	timestampFormat = "2006-01-02 15:04:05"
)

// textFormatter renders "[timestamp] LEVEL: message key=value ..." lines.
type textFormatter struct{}

func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s: %s", entry.Time.Format(timestampFormat), levelName(entry.Level), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != callerKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	if caller, ok := entry.Data[callerKey]; ok {
		fmt.Fprintf(&b, " (%v)", caller)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// jsonFormatter renders one object per line with level, message, timestamp
// and caller next to the structured fields.
type jsonFormatter struct{}

func (f *jsonFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	out := make(map[string]interface{}, len(entry.Data)+3)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		out[k] = v
	}
	out["level"] = levelName(entry.Level)
	out["message"] = entry.Message
	out["timestamp"] = entry.Time.Format(timestampFormat)

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(data, '\n'), nil
}

func levelName(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

func shortFile(path string) string {
	return filepath.Base(path)
}
