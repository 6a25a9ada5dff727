// Copyright © 2026 The qassert authors

package meta

import "fmt"

// Key identifies an assertion site: the module tag passed to the assertion
// handler and the id disambiguating the site within that module.
type Key struct {
	Module string `json:"module" yaml:"module"`
	ID     int    `json:"id" yaml:"id"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d", k.Module, k.ID)
}

// Entry associates one Key with one Description.
type Entry struct {
	Module      string `json:"module" yaml:"module"`
	ID          int    `json:"id" yaml:"id"`
	Description `yaml:",inline"`
}

// Key returns the lookup key of e.
func (e Entry) Key() Key {
	return Key{Module: e.Module, ID: e.ID}
}

// Table is an ordered collection of entries. Keys need not be unique; when a
// key is declared more than once the first declaration wins.
type Table []Entry

// Find scans t in declaration order and returns the first entry matching
// module and id exactly.
func (t Table) Find(module string, id int) (Entry, bool) {
	for _, e := range t {
		if e.ID == id && e.Module == module {
			return e, true
		}
	}
	return Entry{}, false
}

// Duplicates returns, in declaration order, every key declared more than
// once in t. Each key is reported once.
func (t Table) Duplicates() []Key {
	count := make(map[Key]int, len(t))
	for _, e := range t {
		count[e.Key()]++
	}
	var dups []Key
	for _, e := range t {
		k := e.Key()
		if count[k] > 1 {
			dups = append(dups, k)
			count[k] = 0
		}
	}
	return dups
}

// Modules returns the distinct module tags of t in order of first
// appearance.
func (t Table) Modules() []string {
	seen := make(map[string]bool)
	var mods []string
	for _, e := range t {
		if !seen[e.Module] {
			seen[e.Module] = true
			mods = append(mods, e.Module)
		}
	}
	return mods
}
