// Copyright © 2026 The qassert authors

package metasource

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/luthersystems/qassert/meta"
)

// hclFile represents the top-level structure of an HCL description file.
type hclFile struct {
	Assertions []*hclAssertion `hcl:"assertion,block"`
}

type hclAssertion struct {
	Module string `hcl:"module,label"`
	ID     int    `hcl:"id"`
	Brief  string `hcl:"brief,optional"`
	Tips   string `hcl:"tips,optional"`
	URL    string `hcl:"url,optional"`
}

func parseHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	lines := blockLines(file.Body, "assertion")
	f := &File{}
	for i, a := range parsed.Assertions {
		f.Table = append(f.Table, meta.Entry{
			Module: a.Module,
			ID:     a.ID,
			Description: meta.Description{
				Brief: a.Brief,
				Tips:  a.Tips,
				URL:   a.URL,
			},
		})
		line := 0
		if i < len(lines) {
			line = lines[i]
		}
		f.Lines = append(f.Lines, line)
	}
	return f, nil
}

// blockLines returns the starting line of every top-level block of the given
// type, in source order.
func blockLines(body hcl.Body, blockType string) []int {
	sb, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}
	var lines []int
	for _, b := range sb.Blocks {
		if b.Type == blockType {
			lines = append(lines, b.TypeRange.Start.Line)
		}
	}
	return lines
}
