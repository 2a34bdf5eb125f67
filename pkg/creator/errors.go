package creator

import (
	"fmt"

	"github.com/chedl98/hyperleaup/pkg/frame"
)

// UnsupportedTypeError reports a source column whose logical type has no
// engine equivalent. It is fatal for the whole conversion.
type UnsupportedTypeError struct {
	Column string
	Kind   frame.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("column %q has unsupported type %s", e.Column, e.Kind)
}

// DestinationConflictError reports that the destination path is already
// occupied and replace was not requested.
type DestinationConflictError struct {
	Path string
}

func (e *DestinationConflictError) Error() string {
	return fmt.Sprintf("destination %q already exists (set replace to overwrite)", e.Path)
}
