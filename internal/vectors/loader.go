package vectors

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse parses a vector file from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	for _, v := range f.Micro {
		if v.Name == "" {
			return nil, &LoadError{Message: "micro vector name is required"}
		}
		if v.URI == nil && v.Micro == "" {
			return nil, &LoadError{Vector: v.Name, Message: "vector needs a uri or a micro form"}
		}
		if v.URI == nil && v.Error == "" {
			return nil, &LoadError{Vector: v.Name, Message: "vector without uri must expect an error"}
		}
		if _, err := hex.DecodeString(v.Micro); err != nil {
			return nil, &LoadError{Vector: v.Name, Message: "micro form is not valid hex", Cause: err}
		}
	}
	for _, v := range f.Long {
		if v.Name == "" {
			return nil, &LoadError{Message: "long vector name is required"}
		}
	}

	return &f, nil
}

// LoadFile loads a vector file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	f, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return f, nil
}

// LoadDirectory loads and merges all vector files in dir.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) (*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	merged := &File{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		f, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		merged.Micro = append(merged.Micro, f.Micro...)
		merged.Long = append(merged.Long, f.Long...)
	}
	return merged, nil
}

// MicroBytes returns the decoded micro form of the vector.
func (v MicroVector) MicroBytes() []byte {
	b, _ := hex.DecodeString(v.Micro)
	return b
}
