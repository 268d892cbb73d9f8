package schema

import "fmt"

// UnknownLogicalTypeError reports a catalog lookup miss. The caller must fail
// fast; guessed DDL is never emitted.
type UnknownLogicalTypeError struct {
	Logical LogicalType
}

func (e UnknownLogicalTypeError) Error() string {
	return fmt.Sprintf("unknown logical type: %s", e.Logical)
}

// InvalidAttributeError reports an attribute used where its configuration
// makes no sense, e.g. an embedded attribute passed to a scalar operation.
type InvalidAttributeError struct {
	Entity    string
	Attribute string
	Reason    string
}

func (e InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute %s.%s: %s", e.Entity, e.Attribute, e.Reason)
}

// MetadataError wraps an I/O failure from a MetadataProvider with the
// table/column/operation context the caller needs. The underlying error is
// preserved unchanged.
type MetadataError struct {
	Table  string
	Column string
	Op     string
	Err    error
}

func (e MetadataError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("metadata %s for %s: %s", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("metadata %s for %s.%s: %s", e.Op, e.Table, e.Column, e.Err)
}

func (e MetadataError) Unwrap() error {
	return e.Err
}
