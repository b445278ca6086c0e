// Package matrixio reads and writes TSP cost-matrix instance files.
//
// Instances are TOML documents with an optional name and the matrix rows:
//
//	name = "six-cities"
//	rows = [
//	    [0, 10, 15],
//	    [10, 0, 35],
//	    [15, 35, 0],
//	]
//
// Parsing validates the matrix through tsp.NewMatrix, so malformed
// instances surface the same sentinel errors the solvers use.
package matrixio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/zwilder/tsp/pkg/tsp"
)

// Instance is a named cost matrix loaded from disk.
type Instance struct {
	Name   string
	Matrix *tsp.Matrix
}

// instanceDoc is the raw TOML shape before validation.
type instanceDoc struct {
	Name string  `toml:"name"`
	Rows [][]int `toml:"rows"`
}

// Parse decodes a TOML instance from data.
func Parse(data []byte) (*Instance, error) {
	var doc instanceDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode instance: %w", err)
	}
	m, err := tsp.NewMatrix(doc.Rows)
	if err != nil {
		return nil, err
	}
	return &Instance{Name: doc.Name, Matrix: m}, nil
}

// Load reads and parses the instance file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance %s: %w", path, err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse instance %s: %w", path, err)
	}
	return inst, nil
}

// Encode renders an instance back to TOML.
func Encode(inst *Instance) ([]byte, error) {
	if inst == nil || inst.Matrix == nil {
		return nil, tsp.ErrNilMatrix
	}
	doc := instanceDoc{Name: inst.Name, Rows: inst.Matrix.Rows()}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode instance: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the instance as TOML to path.
func Save(path string, inst *Instance) error {
	data, err := Encode(inst)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
