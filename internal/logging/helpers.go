package logging

import (
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// WithFields returns logger scoped to fields. Nil values and blank strings
// are dropped so a recipe entry logged before the store is known does not
// carry store="". Loggers without FieldsLogger support are returned as is.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil {
		return nil
	}
	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	kept := make(map[string]any, len(fields))
	for key, value := range fields {
		if value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		kept[key] = value
	}
	if len(kept) == 0 {
		return logger
	}
	return fieldsLogger.WithFields(kept)
}
