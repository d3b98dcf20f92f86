package schema

import (
	"errors"
	"sort"
)

// Schema is a map of field names to their expected types.
// Example: {"name": String(), "stamina": Int(), "flags": Slice(Bool())}
type Schema map[string]Type

// Validate checks if data conforms to the schema.
// Returns an *AggregateError with all validation failures found, ordered by
// field name so the report is stable.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	keys := make([]string, 0, len(schema))
	for k := range schema {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error

	for _, fieldName := range keys {
		fieldType := schema[fieldName]
		value, exists := data[fieldName]
		if !exists {
			if _, optional := fieldType.(*OptionalType); optional {
				continue
			}
			errs = append(errs, Invalid(fieldName, "required", nil))
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, nestedErrors(fieldName, value, err)...)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

// nestedErrors prefixes the keys of errors reported by an Object field so a
// missing "student.name" reads as such instead of as a failure of "student".
func nestedErrors(fieldName string, value any, err error) []error {
	var aggr *AggregateError
	if !errors.As(err, &aggr) {
		return []error{Invalid(fieldName, err.Error(), value)}
	}

	out := make([]error, 0, len(aggr.Errors))
	for _, inner := range aggr.Errors {
		var ve *ValidationError
		if errors.As(inner, &ve) {
			out = append(out, Invalid(fieldName+"."+ve.Key, ve.Reason, ve.Value))
			continue
		}
		out = append(out, Invalid(fieldName, inner.Error(), value))
	}
	return out
}
