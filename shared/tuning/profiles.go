package tuning

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownProfile = errors.New("tuning: unknown profile")

type profileHeader struct {
	Base string `yaml:"base"`
}

// ParseProfiles decodes a YAML document of named revisions. Each profile
// starts from the built-in revision named by its "base" key (tilemap when
// omitted) and overrides only the keys it sets.
func ParseProfiles(data []byte) (map[string]Revision, error) {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal profiles: %w", err)
	}

	profiles := make(map[string]Revision, len(nodes))
	for name, node := range nodes {
		var header profileHeader
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("tuning: profile %s: %w", name, err)
		}

		rev, ok := Builtin(header.Base)
		if !ok {
			return nil, fmt.Errorf("%w: profile %s has base %q", ErrUnknownProfile, name, header.Base)
		}
		if err := node.Decode(&rev); err != nil {
			return nil, fmt.Errorf("tuning: profile %s: %w", name, err)
		}
		rev.Name = name

		if err := rev.Validate(); err != nil {
			return nil, err
		}
		profiles[name] = rev
	}
	return profiles, nil
}

// Select returns the named profile, falling back to the built-in revisions.
func Select(profiles map[string]Revision, name string) (Revision, error) {
	if rev, ok := profiles[name]; ok {
		return rev, nil
	}
	if rev, ok := Builtin(name); ok {
		return rev, nil
	}
	return Revision{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownProfile, name, Names(profiles))
}

// Names lists profile names in sorted order.
func Names(profiles map[string]Revision) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
