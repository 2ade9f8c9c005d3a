package logtail

import (
	"fmt"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Entry is one structured log record.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Fields    map[string]string
	// Raw holds the original line when it was not JSON.
	Raw string
}

// reserved keys are rendered in the header, not as fields.
var reserved = map[string]bool{
	"time":      true,
	"level":     true,
	"message":   true,
	"component": true,
	"session":   true,
}

// Parse decodes a JSON log line. Lines that are not JSON objects come back
// with only Raw set.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{Raw: line}
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
		return Entry{Raw: line}
	}

	entry := Entry{
		Level:     stringField(record, "level"),
		Component: stringField(record, "component"),
		Message:   stringField(record, "message"),
		Fields:    make(map[string]string),
	}
	if ts := stringField(record, "time"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.Time = parsed
		}
	}
	for key, value := range record {
		if reserved[key] {
			continue
		}
		entry.Fields[key] = fmt.Sprint(value)
	}
	return entry
}

// Format renders e as a single human-readable line:
//
//	15:04:05 INFO [store] listing purchased action=purchase listing_id=2
func Format(e Entry) string {
	if e.Raw != "" {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteByte(' ')
	}
	level := strings.ToUpper(strings.TrimSpace(e.Level))
	if level == "" {
		level = "INFO"
	}
	b.WriteString(level)
	if e.Component != "" {
		b.WriteString(" [")
		b.WriteString(e.Component)
		b.WriteByte(']')
	}
	if e.Message != "" {
		b.WriteByte(' ')
		b.WriteString(e.Message)
	}
	for _, key := range SortedKeys(e.Fields) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(e.Fields[key])
	}
	return b.String()
}

// SortedKeys returns the field names of fields in a stable order.
func SortedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringField(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok {
		return v
	}
	return ""
}
