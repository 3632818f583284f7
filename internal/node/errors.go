package node

import "fmt"

// DuplicateFieldError reports two non-skipped members of the same struct (or
// struct-like variant payload) sharing a name.
type DuplicateFieldError struct {
	Type  string
	Field string
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("schema builder: type %q declares field %q more than once", e.Type, e.Field)
}

// DuplicateVariantError reports two variants of the same enum sharing a name.
type DuplicateVariantError struct {
	Type    string
	Variant string
}

func (e DuplicateVariantError) Error() string {
	return fmt.Sprintf("schema builder: enum %q declares variant %q more than once", e.Type, e.Variant)
}
