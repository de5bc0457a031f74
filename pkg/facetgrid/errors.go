package facetgrid

import (
	"errors"
	"fmt"

	"github.com/facetgrid/facetgrid-go/pkg/facetgrid/position"
)

// ErrNoRecords indicates the engine has no records to lay out.
var ErrNoRecords = errors.New("no records")

// ErrUnknownHeader indicates an operation referenced a header id that is
// not part of the current header trees.
var ErrUnknownHeader = errors.New("unknown header")

// ErrUnknownCell indicates an operation referenced a cell id that does
// not exist in the current grid.
var ErrUnknownCell = errors.New("unknown cell")

// ErrOperationActive indicates a pointer operation (resize, axis drag,
// lasso) is already in progress; concurrent operations of different
// kinds must be serialized by the caller.
var ErrOperationActive = errors.New("pointer operation already in progress")

// ErrMalformedSnapshot indicates a restore payload that was discarded.
var ErrMalformedSnapshot = position.ErrMalformedSnapshot

// EngineError wraps a failure with the component and operation it
// occurred in.
type EngineError struct {
	Component string // "layout", "selection", "sort", "filter", "resize", "drag", "position", "store"
	Op        string
	Err       error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("facetgrid %s: %s: %v", e.Component, e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError creates a new EngineError.
func NewEngineError(component, op string, err error) *EngineError {
	return &EngineError{Component: component, Op: op, Err: err}
}
