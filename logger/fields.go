package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldAdapter   = "adapter"
	FieldIterator  = "iterator"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldError     = "error"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
// A trailing key without a value and non-string keys are ignored.
//
//	logger.Warn("skip on infinite source", logger.Fields("adapter", "Repeat", "n", 3))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// AdapterFields creates fields describing a diagnostic raised by an adapter.
func AdapterFields(adapter, op string) map[string]interface{} {
	return map[string]interface{}{
		FieldAdapter:   adapter,
		FieldOperation: op,
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}
