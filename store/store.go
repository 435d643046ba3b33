package store

import (
	"context"
	"time"
)

// Store is the metadata store client boundary. The access layer holds a
// handle supplied by the caller; lifecycle (connect, close) is the
// caller's concern.
type Store interface {
	// GetArtifactsAndTypesByIDs returns at most one record per distinct
	// requested ID (never more), together with the full set of distinct
	// type definitions referenced by the returned records. Missing IDs
	// are not an error at this level; the store just returns fewer
	// records.
	GetArtifactsAndTypesByIDs(ctx context.Context, ids []int64) ([]*Record, []ArtifactType, error)

	// PutArtifacts persists all given records as one batch. Records with
	// an ID are updated in place; records without one are created and
	// assigned an ID. The batch is applied atomically.
	PutArtifacts(ctx context.Context, recs []*Record) error
}

// Record is the store's native representation of an artifact.
type Record struct {
	// ID is assigned by the store on first persist. Zero means the
	// record has never been persisted.
	ID int64 `json:"id,omitempty"`

	// TypeID references the artifact's type definition.
	TypeID int64 `json:"typeId"`

	// URI locates the artifact's payload (filesystem path, object store
	// URL, ...). Opaque to the store.
	URI string `json:"uri,omitempty"`

	// Name is an optional caller-assigned name.
	Name string `json:"name,omitempty"`

	// ExternalID is an optional caller-facing identifier, unique per
	// store when set.
	ExternalID string `json:"externalId,omitempty"`

	// State is the artifact's lifecycle state. Opaque at the record
	// level; the domain layer interprets it.
	State string `json:"state,omitempty"`

	// Properties are the values declared by the artifact's type.
	Properties map[string]Value `json:"properties,omitempty"`

	// CustomProperties are free-form values outside the type's schema.
	CustomProperties map[string]Value `json:"customProperties,omitempty"`

	CreateTime     time.Time `json:"createTime,omitempty"`
	LastUpdateTime time.Time `json:"lastUpdateTime,omitempty"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.Properties = cloneValues(r.Properties)
	c.CustomProperties = cloneValues(r.CustomProperties)
	return &c
}

func cloneValues(m map[string]Value) map[string]Value {
	if m == nil {
		return nil
	}
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ArtifactType is a type definition: the schema side of the type-join
// performed on read.
type ArtifactType struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`

	// Properties declares the property schema for records of this type.
	Properties map[string]PropertyType `json:"properties,omitempty"`
}

// PropertyType enumerates the declared value kinds a type schema allows.
type PropertyType string

// Declared property kinds.
const (
	PropertyInt    PropertyType = "INT"
	PropertyDouble PropertyType = "DOUBLE"
	PropertyString PropertyType = "STRING"
	PropertyStruct PropertyType = "STRUCT"
)
