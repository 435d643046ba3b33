package lineage

import "sort"

// ArtifactMultiMap groups artifacts under logical keys, typically
// input/output channel names of a pipeline node. The access layer only
// iterates it; the keys carry no meaning here.
type ArtifactMultiMap map[string][]Artifact

// Flatten returns all artifacts as a single sequence: keys in sorted
// order, then each key's artifacts in declared order. Map iteration
// order alone would not be stable across calls.
func (m ArtifactMultiMap) Flatten() []Artifact {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []Artifact
	for _, k := range keys {
		out = append(out, m[k]...)
	}
	return out
}

// Count returns the total number of artifacts across all keys.
func (m ArtifactMultiMap) Count() int {
	n := 0
	for _, as := range m {
		n += len(as)
	}
	return n
}
