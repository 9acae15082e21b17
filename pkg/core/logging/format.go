package logging

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects the output encoding of a logger
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat converts "json" or "text" to a Format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %s", format)
	}
}

// Formatter turns an entry into bytes
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter writes one JSON object per line
type JSONFormatter struct {
	TimestampFormat string
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if len(entry.Fields) > 0 {
		data["fields"] = map[string]interface{}(entry.Fields)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter writes human-readable single-line entries
type TextFormatter struct {
	TimestampFormat string
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		entry.Timestamp.Format(f.TimestampFormat),
		fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())),
	}
	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}
	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.keys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// GetFormatter returns the formatter for a format
func GetFormatter(format Format) Formatter {
	if format == FormatJSON {
		return &JSONFormatter{TimestampFormat: time.RFC3339}
	}
	return &TextFormatter{TimestampFormat: "15:04:05"}
}
