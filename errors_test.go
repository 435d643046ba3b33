package lineage

import (
	"errors"
	"strings"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{IDs: []int64{1, 2, 3}}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError does not match ErrNotFound")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("NotFoundError matches ErrInvalidArgument")
	}
	if msg := err.Error(); !strings.Contains(msg, "[1 2 3]") {
		t.Errorf("Error() = %q, want the requested id list", msg)
	}
}

func TestInvalidArgumentError(t *testing.T) {
	err := &InvalidArgumentError{
		Op:       "UpdateArtifacts",
		TypeName: "Model",
		Reason:   "artifact must have a persisted ID in order to be updated",
	}

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("InvalidArgumentError does not match ErrInvalidArgument")
	}
	msg := err.Error()
	if !strings.Contains(msg, "UpdateArtifacts") || !strings.Contains(msg, `"Model"`) {
		t.Errorf("Error() = %q, want op and type name", msg)
	}
}

func TestInvalidArgumentError_NoTypeName(t *testing.T) {
	err := &InvalidArgumentError{Op: "UpdateArtifacts", Reason: "bad input"}
	if got := err.Error(); got != "UpdateArtifacts: bad input" {
		t.Errorf("Error() = %q", got)
	}
}
