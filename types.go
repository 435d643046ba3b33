package lineage

import (
	"github.com/randalmurphal/lineage/store"
)

// Standard artifact type names.
const (
	TypeExamples          = "Examples"
	TypeExampleStatistics = "ExampleStatistics"
	TypeSchema            = "Schema"
	TypeModel             = "Model"
	TypeModelBlessing     = "ModelBlessing"
	TypeModelEvaluation   = "ModelEvaluation"
)

// Factory constructs an empty typed artifact variant.
type Factory func() Artifact

// Registry maps artifact type names to the variant constructed on
// deserialization. Lookup happens once per fetched batch; type names
// absent from the registry deserialize to *Generic.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a type name to a variant factory, replacing any
// previous binding.
func (r *Registry) Register(typeName string, f Factory) {
	r.factories[typeName] = f
}

// Deserialize rehydrates a store record into its typed domain object,
// using the resolved type definition to select the variant shape.
func (r *Registry) Deserialize(typ store.ArtifactType, rec *store.Record) Artifact {
	var out Artifact
	if f, ok := r.factories[typ.Name]; ok {
		out = f()
	} else {
		out = &Generic{}
	}
	out.base().attach(rec, typ)
	return out
}

// DefaultRegistry returns a registry pre-populated with the standard
// artifact variants.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeExamples, func() Artifact { return &Examples{} })
	r.Register(TypeExampleStatistics, func() Artifact { return &ExampleStatistics{} })
	r.Register(TypeSchema, func() Artifact { return &Schema{} })
	r.Register(TypeModel, func() Artifact { return &Model{} })
	r.Register(TypeModelBlessing, func() Artifact { return &ModelBlessing{} })
	r.Register(TypeModelEvaluation, func() Artifact { return &ModelEvaluation{} })
	return r
}

// =============================================================================
// Standard Variants
// =============================================================================

// Generic is the fallback variant for type names without a registered shape.
type Generic struct {
	Base
}

// Examples holds materialized training/eval example payloads.
type Examples struct {
	Base
}

// Span returns the data span this example set belongs to.
func (e *Examples) Span() int64 { return e.IntProperty("span") }

// SetSpan sets the data span.
func (e *Examples) SetSpan(span int64) { e.SetProperty("span", store.IntValue(span)) }

// Version returns the version within the span.
func (e *Examples) Version() int64 { return e.IntProperty("version") }

// SplitNames returns the encoded split name list.
func (e *Examples) SplitNames() string { return e.StringProperty("split_names") }

// ExampleStatistics holds computed statistics over an example set.
type ExampleStatistics struct {
	Base
}

// Span returns the data span the statistics were computed over.
func (s *ExampleStatistics) Span() int64 { return s.IntProperty("span") }

// Schema holds an inferred or curated data schema.
type Schema struct {
	Base
}

// Model holds a trained model export.
type Model struct {
	Base
}

// ModelBlessing records a validation verdict over a model.
type ModelBlessing struct {
	Base
}

// Blessed reports whether the model passed validation.
func (m *ModelBlessing) Blessed() bool { return m.IntCustomProperty("blessed") != 0 }

// SetBlessed records the validation verdict.
func (m *ModelBlessing) SetBlessed(blessed bool) {
	v := int64(0)
	if blessed {
		v = 1
	}
	m.SetCustomProperty("blessed", store.IntValue(v))
}

// ModelEvaluation holds evaluation results for a model.
type ModelEvaluation struct {
	Base
}
