package envspec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Doc is a parsed environment file. Conda environment files are free-form
// mappings (name, channels, dependencies, variables, ...), so the document is
// kept generic rather than forced into a fixed struct.
type Doc map[string]any

// Load reads and parses an environment YAML file.
func Load(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading environment file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses environment YAML content.
func Parse(data []byte) (Doc, error) {
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing environment YAML: %w", err)
	}
	return doc, nil
}

// Marshal serializes a document back to YAML, e.g. for the working file
// handed to the backend and the snapshot kept beside the environment.
func Marshal(doc Doc) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling environment file: %w", err)
	}
	return data, nil
}

// Compose returns a copy of doc with channels prepended to the channel list
// and deps appended to the dependency list. The original document is not
// modified.
func Compose(doc Doc, channels, deps []string) Doc {
	out := make(Doc, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if len(channels) > 0 {
		merged := make([]any, 0, len(channels))
		for _, c := range channels {
			merged = append(merged, c)
		}
		if cur, ok := out["channels"].([]any); ok {
			merged = append(merged, cur...)
		}
		out["channels"] = merged
	}

	if len(deps) > 0 {
		var merged []any
		if cur, ok := out["dependencies"].([]any); ok {
			merged = append(merged, cur...)
		}
		for _, d := range deps {
			merged = append(merged, d)
		}
		out["dependencies"] = merged
	}

	return out
}

// Hash returns the content hash of a document: a sha256 over its canonical
// serialization. Documents that differ only in formatting hash equal.
func Hash(doc Doc) string {
	sum := sha256.Sum256(Canonical(doc))
	return hex.EncodeToString(sum[:])
}

// Canonical returns a deterministic byte serialization of the document:
// mapping keys sorted, scalars rendered in a fixed form, no formatting
// artifacts from the source file.
func Canonical(doc Doc) []byte {
	var b bytes.Buffer
	writeCanonical(&b, map[string]any(doc))
	return b.Bytes()
}

func writeCanonical(b *bytes.Buffer, v any) {
	switch v := v.(type) {
	case nil:
		b.WriteString("~")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%q:", k)
			writeCanonical(b, v[k])
		}
		b.WriteByte('}')
	case map[any]any:
		// yaml.v3 produces these for non-string keys; normalize through
		// the string form so the two map shapes hash identically.
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprintf("%v", k)] = val
		}
		writeCanonical(b, m)
	case []any:
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, e)
		}
		b.WriteByte(']')
	case string:
		fmt.Fprintf(b, "%q", v)
	case bool:
		fmt.Fprintf(b, "%t", v)
	case int:
		fmt.Fprintf(b, "%d", v)
	case int64:
		fmt.Fprintf(b, "%d", v)
	case float64:
		if v == float64(int64(v)) {
			// YAML parses "3" and "3.0" contexts inconsistently across
			// round-trips; integral floats collapse to their integer form.
			fmt.Fprintf(b, "%d", int64(v))
		} else {
			fmt.Fprintf(b, "%g", v)
		}
	default:
		fmt.Fprintf(b, "%q", fmt.Sprintf("%v", v))
	}
}
