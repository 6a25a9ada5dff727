// Copyright © 2026 The qassert authors

package metasource

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/luthersystems/qassert/meta"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Assertions yaml.Node `yaml:"assertions"`
}

// entryFields are the keys an assertion entry may carry. Node.Decode does
// not inherit the document decoder's KnownFields setting, so entries are
// checked against this set.
var entryFields = map[string]bool{
	"module": true,
	"id":     true,
	"brief":  true,
	"tips":   true,
	"url":    true,
}

func parseYAML(src []byte, filename string) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc yamlFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil // empty document
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	f := &File{}
	seq := &doc.Assertions
	if seq.Kind == 0 {
		return f, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s:%d: assertions must be a list", filename, seq.Line)
	}
	for _, node := range seq.Content {
		if err := checkEntryFields(node, filename); err != nil {
			return nil, err
		}
		var e meta.Entry
		if err := node.Decode(&e); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, node.Line, err)
		}
		f.Table = append(f.Table, e)
		f.Lines = append(f.Lines, node.Line)
	}
	return f, nil
}

func checkEntryFields(node *yaml.Node, filename string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if !entryFields[k.Value] {
			return fmt.Errorf("%s:%d: unknown field %q in assertion entry", filename, k.Line, k.Value)
		}
	}
	return nil
}
