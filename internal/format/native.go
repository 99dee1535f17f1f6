package format

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"sweconstraint/pkg/swe"
)

// nativeDoc is the on-disk YAML shape of a native SWE instance. Variable
// symbols are single-character YAML map keys (e.g. "X": ["ello", "eap"])
// rather than swe.Variable, since YAML has no byte scalar type.
type nativeDoc struct {
	S        string              `yaml:"s"`
	Patterns []string            `yaml:"patterns"`
	Domains  map[string][]string `yaml:"domains"`
}

// ReadNative parses a native YAML instance file into its target string,
// patterns, and domains, ready to pass to swe.NewSolver.
func ReadNative(path string) (s string, patterns []string, domains map[swe.Variable][]string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("format: reading %s: %w", path, err)
	}

	var doc nativeDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", nil, nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	domains = make(map[swe.Variable][]string, len(doc.Domains))
	for key, choices := range doc.Domains {
		if len(key) != 1 || !swe.IsValidVariable(key[0]) {
			return "", nil, nil, fmt.Errorf("%w: %s: domain key %q is not a single A-Z letter", ErrMalformed, path, key)
		}
		domains[swe.Variable(key[0])] = choices
	}

	return doc.S, doc.Patterns, domains, nil
}

// WriteNative serializes (s, patterns, domains) as a native YAML instance
// file at path, with domain keys sorted for a reproducible diff.
func WriteNative(path string, s string, patterns []string, domains map[swe.Variable][]string) error {
	yamlDomains := make(map[string][]string, len(domains))
	var keys []string
	for x := range domains {
		keys = append(keys, string(byte(x)))
	}
	sort.Strings(keys)
	for _, k := range keys {
		yamlDomains[k] = domains[swe.Variable(k[0])]
	}

	doc := nativeDoc{S: s, Patterns: patterns, Domains: yamlDomains}
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("format: marshaling instance: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("format: writing %s: %w", path, err)
	}
	return nil
}
