// Package protocol matches owned-object types against known DeFi protocol
// signatures and extracts display fields from matched objects.
package protocol

import (
	"fmt"
	"sort"
	"strings"

	"walletScope/internal/model"
)

// ExtractFunc pulls display fields out of a matched object's content.
type ExtractFunc func(object model.OwnedObject) ([]model.PositionField, error)

// Signature pairs a protocol name with the object type prefixes it claims
// and an extractor for matched objects.
type Signature struct {
	Protocol     string
	TypePrefixes []string
	Extract      ExtractFunc
}

// Matches reports whether the object type falls under one of the signature
// prefixes. Prefix matching covers generic type parameters.
func (s Signature) Matches(objectType string) bool {
	for _, prefix := range s.TypePrefixes {
		if strings.HasPrefix(objectType, prefix) {
			return true
		}
	}
	return false
}

// Registry holds signatures in evaluation order. The first match wins, so
// more specific signatures must be registered before broader ones.
type Registry struct {
	signatures []Signature
}

// NewRegistry builds a registry from the given signatures.
func NewRegistry(signatures ...Signature) *Registry {
	r := &Registry{}
	r.Append(signatures...)
	return r
}

// Default returns a registry preloaded with the built-in signatures.
func Default() *Registry {
	return NewRegistry(Builtin()...)
}

// Append adds signatures behind the existing ones.
func (r *Registry) Append(signatures ...Signature) {
	r.signatures = append(r.signatures, signatures...)
}

// Match returns the first signature claiming the object type.
func (r *Registry) Match(objectType string) (Signature, bool) {
	if objectType == "" {
		return Signature{}, false
	}
	for _, signature := range r.signatures {
		if signature.Matches(objectType) {
			return signature, true
		}
	}
	return Signature{}, false
}

// GenericSignature builds a signature from configuration: each field maps a
// display label to a dotted path inside the object content. Labels render
// in lexical order.
func GenericSignature(name string, prefixes []string, fields map[string]string) (Signature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Signature{}, fmt.Errorf("protocol name is required")
	}

	cleaned := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		cleaned = append(cleaned, prefix)
	}
	if len(cleaned) == 0 {
		return Signature{}, fmt.Errorf("protocol %s: at least one type prefix is required", name)
	}

	labels := make([]string, 0, len(fields))
	for label := range fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	extract := func(object model.OwnedObject) ([]model.PositionField, error) {
		out := make([]model.PositionField, 0, len(labels))
		for _, label := range labels {
			value, err := lookupPath(object.Fields, fields[label])
			if err != nil {
				return nil, err
			}
			out = append(out, model.PositionField{Label: label, Value: value})
		}
		return out, nil
	}

	return Signature{Protocol: name, TypePrefixes: cleaned, Extract: extract}, nil
}
