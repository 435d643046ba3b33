package lineage

import (
	"fmt"

	"github.com/randalmurphal/lineage/store"
)

// =============================================================================
// Artifact State
// =============================================================================

// State is an artifact's lifecycle state.
type State string

// Artifact lifecycle states.
const (
	// StateUnknown is the zero state. Passing it to UpdateArtifacts
	// leaves each artifact's state untouched.
	StateUnknown State = ""

	// StatePending marks an artifact whose payload is being produced.
	StatePending State = "pending"

	// StatePublished marks an artifact whose payload is complete and
	// visible to downstream consumers.
	StatePublished State = "published"

	// StateMissing marks an artifact whose payload was not found at its URI.
	StateMissing State = "missing"

	// StateMarkedForDeletion marks an artifact queued for garbage collection.
	StateMarkedForDeletion State = "marked_for_deletion"

	// StateDeleted marks an artifact whose payload has been removed.
	StateDeleted State = "deleted"

	// StateAbandoned marks an artifact orphaned by a failed or cancelled run.
	StateAbandoned State = "abandoned"
)

// =============================================================================
// Typed Artifact
// =============================================================================

// Artifact is the typed domain view over a persisted artifact record.
// Implementations are the standard variants in this package plus any
// caller-registered variant embedding Base; every Artifact wraps exactly
// one record and the resolved type definition for its TypeID.
//
// Artifacts are constructed fresh per fetch and are caller-owned:
// mutations are in-memory until persisted with UpdateArtifacts.
type Artifact interface {
	// ID is the store-assigned identifier, 0 if never persisted.
	ID() int64

	// HasID reports whether the artifact has been persisted.
	HasID() bool

	// TypeName is the resolved human-readable type name.
	TypeName() string

	// Type is the resolved type definition.
	Type() store.ArtifactType

	// URI locates the artifact's payload.
	URI() string
	SetURI(uri string)

	// State is the artifact's lifecycle state.
	State() State
	SetState(s State)

	// Record is the underlying store record. It is the live record, not
	// a copy; mutations through the typed accessors are visible here.
	Record() *store.Record

	base() *Base
}

// Base is the common implementation behind every typed artifact variant.
// Custom variants embed it:
//
//	type PushedModel struct {
//	    lineage.Base
//	}
type Base struct {
	rec *store.Record
	typ store.ArtifactType
}

func (b *Base) base() *Base { return b }

// attach binds the variant to its record and resolved type.
func (b *Base) attach(rec *store.Record, typ store.ArtifactType) {
	b.rec = rec
	b.typ = typ
}

// ID returns the store-assigned identifier, 0 if never persisted.
func (b *Base) ID() int64 { return b.rec.ID }

// HasID reports whether the artifact has been persisted.
func (b *Base) HasID() bool { return b.rec.ID != 0 }

// TypeName returns the resolved type name.
func (b *Base) TypeName() string { return b.typ.Name }

// Type returns the resolved type definition.
func (b *Base) Type() store.ArtifactType { return b.typ }

// URI returns the payload location.
func (b *Base) URI() string { return b.rec.URI }

// SetURI sets the payload location.
func (b *Base) SetURI(uri string) { b.rec.URI = uri }

// State returns the lifecycle state.
func (b *Base) State() State { return State(b.rec.State) }

// SetState sets the lifecycle state in memory. UpdateArtifacts persists it.
func (b *Base) SetState(s State) { b.rec.State = string(s) }

// Record returns the underlying store record.
func (b *Base) Record() *store.Record { return b.rec }

func (b *Base) String() string {
	return fmt.Sprintf("Artifact(type=%s, id=%d, uri=%s, state=%s)",
		b.typ.Name, b.rec.ID, b.rec.URI, b.rec.State)
}

// =============================================================================
// Property Accessors
// =============================================================================

// IntProperty returns the named declared property as int, 0 if unset.
func (b *Base) IntProperty(name string) int64 {
	return b.rec.Properties[name].Int()
}

// DoubleProperty returns the named declared property as double, 0 if unset.
func (b *Base) DoubleProperty(name string) float64 {
	return b.rec.Properties[name].Double()
}

// StringProperty returns the named declared property as string, "" if unset.
func (b *Base) StringProperty(name string) string {
	return b.rec.Properties[name].String()
}

// SetProperty sets a declared property.
func (b *Base) SetProperty(name string, v store.Value) {
	if b.rec.Properties == nil {
		b.rec.Properties = make(map[string]store.Value)
	}
	b.rec.Properties[name] = v
}

// IntCustomProperty returns the named custom property as int, 0 if unset.
func (b *Base) IntCustomProperty(name string) int64 {
	return b.rec.CustomProperties[name].Int()
}

// StringCustomProperty returns the named custom property as string, "" if unset.
func (b *Base) StringCustomProperty(name string) string {
	return b.rec.CustomProperties[name].String()
}

// SetCustomProperty sets a custom property.
func (b *Base) SetCustomProperty(name string, v store.Value) {
	if b.rec.CustomProperties == nil {
		b.rec.CustomProperties = make(map[string]store.Value)
	}
	b.rec.CustomProperties[name] = v
}
