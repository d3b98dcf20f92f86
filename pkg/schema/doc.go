// Package schema provides the validation vocabulary shared by the simulator.
//
// It has two halves. ValidationError and AggregateError describe why a value
// was rejected: entity constructors return a *ValidationError when a bounded
// field is out of range, and every such error matches ErrValidation with
// errors.Is.
//
// Schema describes the expected shape of loosely typed data (for example a
// save file decoded into map[string]any) so that a malformed document can be
// rejected with a complete list of problems before it is decoded:
//
//	shape := schema.Schema{
//	    "today": schema.Int(),
//	    "stage": schema.String(),
//	    "seed":  schema.Optional(schema.Int()),
//	    "student": schema.Object(schema.Schema{
//	        "name": schema.String(),
//	    }),
//	}
//
//	if err := schema.Validate(shape, data); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        fmt.Println(e)
//	    }
//	}
//
// The package depends on the standard library only.
package schema
