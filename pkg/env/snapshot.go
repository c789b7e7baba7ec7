// pkg/env/snapshot.go
package env

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates an unsupported snapshot format
var ErrUnknownFormat = errors.New("unknown snapshot format")

// Format selects a snapshot encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat converts a format name ("yml" is accepted for yaml)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Snapshot is the serialized form of an Environment, read by build drivers
type Snapshot struct {
	Platform string              `json:"platform,omitempty" yaml:"platform,omitempty" toml:"platform,omitempty"`
	Jobs     int                 `json:"jobs" yaml:"jobs" toml:"jobs"`
	Vars     map[string][]string `json:"vars" yaml:"vars" toml:"vars"`
}

// Snapshot captures the current values, tagged with the platform they
// were resolved for
func (e *Environment) Snapshot(platform string) *Snapshot {
	s := &Snapshot{
		Platform: platform,
		Jobs:     e.jobs,
		Vars:     make(map[string][]string, len(e.vars)),
	}
	for k := range e.vars {
		s.Vars[k] = e.Values(k)
	}
	return s
}

// Environment rebuilds an Environment from the snapshot
func (s *Snapshot) Environment() *Environment {
	e := New()
	e.SetJobs(s.Jobs)
	for _, k := range sortedKeys(s.Vars) {
		e.Append(k, s.Vars[k]...)
	}
	return e
}

// Encode writes the snapshot in the given format
func (s *Snapshot) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// DecodeSnapshot reads a snapshot in the given format
func DecodeSnapshot(r io.Reader, format Format) (*Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	return &s, nil
}

// Save writes the snapshot to path, choosing the format from its extension
func (s *Snapshot) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := s.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSnapshot reads a snapshot written by Save
func LoadSnapshot(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	return DecodeSnapshot(f, format)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
