package logger

import (
	"log/slog"
	"sort"
)

// LoggingDetail is a piece of structured information attached to a log entry.
type LoggingDetail interface{ attrs() []slog.Attr }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) attrs() []slog.Attr {
	return []slog.Attr{{Key: f.Key, Value: toValue(f.Value)}}
}

// Fields is a group of logging details, nested Fields values become nested JSON objects.
type Fields map[string]any

func (fields Fields) attrs() []slog.Attr {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Attr{Key: k, Value: toValue(fields[k])})
	}
	return attrs
}

func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func toValue(v any) slog.Value {
	switch v := v.(type) {
	case Fields:
		return slog.GroupValue(v.attrs()...)
	case LoggingDetail:
		return slog.GroupValue(v.attrs()...)
	default:
		return slog.AnyValue(v)
	}
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) attrs() []slog.Attr { return nil }
