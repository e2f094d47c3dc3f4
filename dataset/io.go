// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Encode writes in as a YAML document.
func Encode(w io.Writer, in *Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("dataset: encode %s: %w", in.Name, err)
	}

	return enc.Close()
}

// Decode reads one YAML instance and validates its shape.
func Decode(r io.Reader) (*Instance, error) {
	var in Instance
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset: empty document: %w", ErrMalformed)
		}
		return nil, fmt.Errorf("dataset: decode: %w: %w", ErrMalformed, err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// Save writes in to dir/<in.Name>.yaml, creating dir if needed.
func Save(dir string, in *Instance) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("dataset: %w", err)
	}
	path := filepath.Join(dir, in.Name+".yaml")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("dataset: %w", err)
	}
	if err = Encode(f, in); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("dataset: %w", err)
	}

	return path, nil
}

// Load reads dir/<name>.yaml. A stored instance without a name takes name.
func Load(dir, name string) (*Instance, error) {
	f, err := os.Open(filepath.Join(dir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	in, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", name, err)
	}
	if in.Name == "" {
		in.Name = name
	}

	return in, nil
}
