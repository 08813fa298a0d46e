package graphgeo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphgeo/graph"
	"github.com/hupe1980/graphgeo/index"
	"github.com/hupe1980/graphgeo/model"
)

var (
	// ErrNotFound is returned when an id has no current entry.
	ErrNotFound = errors.New("not found")

	// ErrIncompleteGeometry is returned when a node or an edge endpoint has
	// no position, so no geometry can be computed for it.
	ErrIncompleteGeometry = errors.New("incomplete geometry")

	// ErrInvariantViolation indicates a defect in the geometry index itself.
	// It is never caused by caller input.
	ErrInvariantViolation = index.ErrInvariantViolation
)

// ErrUnpositioned indicates that geometry could not be built because a node
// lacks a position.
//
// It matches ErrIncompleteGeometry via errors.Is.
type ErrUnpositioned struct {
	Node model.NodeID
}

func (e *ErrUnpositioned) Error() string {
	return fmt.Sprintf("%s: node %d has no position", ErrIncompleteGeometry, e.Node)
}

func (e *ErrUnpositioned) Unwrap() error { return ErrIncompleteGeometry }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, graph.ErrUnknownNode) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
