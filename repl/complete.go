// Copyright © 2026 The qassert authors

package repl

import (
	"sort"
	"strconv"
	"strings"

	"github.com/luthersystems/qassert/meta"
)

// refCompleter implements readline.AutoCompleter. The first word completes
// to a module name and the second to an id declared for that module.
type refCompleter struct {
	modules []string
	ids     map[string][]string
}

func newCompleter(reg *meta.Registry) *refCompleter {
	c := &refCompleter{ids: make(map[string][]string)}
	entries := reg.Entries()
	c.modules = entries.Modules()
	for _, e := range entries {
		c.ids[e.Module] = append(c.ids[e.Module], strconv.Itoa(e.ID))
	}
	for _, ids := range c.ids {
		sort.Strings(ids)
	}
	return c
}

func (c *refCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == ':' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	head := strings.TrimSpace(string(line[:start]))

	var candidates []string
	if head == "" {
		candidates = matchPrefix(c.modules, prefix)
	} else {
		module := strings.TrimSuffix(head, ":")
		if strings.ContainsAny(module, " \t") {
			return nil, 0
		}
		candidates = matchPrefix(c.ids[module], prefix)
	}
	if len(candidates) == 0 {
		return nil, 0
	}

	// Each completion is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, s := range candidates {
		result = append(result, []rune(s[len(prefix):]))
	}
	return result, len(prefix)
}

func matchPrefix(words []string, prefix string) []string {
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}
