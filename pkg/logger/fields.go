package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldSubject   = "subject"
	FieldReason    = "reason"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldRemote    = "remote_addr"
	FieldStatus    = "status"
	FieldError     = "error"
)

// Fields builds a map from alternating key-value pairs.
//
//	log.Info("issued", logger.Fields(logger.FieldSubject, "alice"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
