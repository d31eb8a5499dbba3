package aprsroute

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a router configuration file
// (SPEC_FULL.md §6.5). It is unmarshalled directly with yaml.v3 struct
// tags rather than the generic map[string]interface{} the teacher uses
// for tocalls.yaml; the schema here is small and fixed, so tags are the
// more direct fit.
type fileConfig struct {
	Station     string   `yaml:"station"`
	Aliases     []string `yaml:"aliases"`
	Patterns    []string `yaml:"patterns"`
	Options     []string `yaml:"options"`
	Diagnostics bool     `yaml:"diagnostics"`
}

// LoadConfig reads a YAML router configuration file from path and builds
// a RouterSettings from it. Aliases and Patterns in the file are kept
// separate (unlike NewRouterSettings, which infers the split from a
// combined path list) since the file format makes the distinction
// explicit.
func LoadConfig(path string) (RouterSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RouterSettings{}, fmt.Errorf("aprsroute: reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return RouterSettings{}, fmt.Errorf("aprsroute: parsing config %s: %w", path, err)
	}

	if fc.Station == "" {
		return RouterSettings{}, fmt.Errorf("aprsroute: config %s: %w", path, ErrStationRequired)
	}

	options, err := ParseRoutingOptions(fc.Options)
	if err != nil {
		return RouterSettings{}, fmt.Errorf("aprsroute: config %s: %w", path, err)
	}

	settings := RouterSettings{
		Station:     fc.Station,
		Aliases:     fc.Aliases,
		Options:     options,
		Diagnostics: fc.Diagnostics,
	}
	for _, tok := range fc.Patterns {
		a := ParseAddress(tok)
		settings.Patterns = append(settings.Patterns, Pattern{Text: a.Text, N: a.N, Cap: a.Hops})
	}
	return settings, nil
}
