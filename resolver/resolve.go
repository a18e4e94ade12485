/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"strings"

	"bennypowers.dev/tokenbench/parser/common"
)

// Step is one hop of a resolution chain.
type Step struct {
	// Key is the table key the reference resolved to.
	Key string `json:"key"`

	// Value is the value stored under Key.
	Value string `json:"value"`
}

// Resolve follows value to its final literal.
//
// A brace reference {path} is looked up exactly, then by suffix. A code
// syntax reference (a "--" string present in the table) is looked up
// exactly. Resolution recurses until a non-reference value is reached.
// Missing references resolve to "". A reference that revisits a key
// already on the chain also resolves to "", so cyclic input terminates.
// Values that are not references are returned unchanged.
func Resolve(value string, table *Table) string {
	final, _ := follow(value, table)
	return final
}

// Trace resolves value like Resolve and also returns every hop taken.
func Trace(value string, table *Table) (string, []Step) {
	return follow(value, table)
}

// IsReference reports whether value would be followed by Resolve.
func IsReference(value string, table *Table) bool {
	_, ok, _ := target(value, table)
	return ok
}

func follow(value string, table *Table) (string, []Step) {
	var chain []Step
	visited := make(map[string]bool)
	for {
		key, isRef, found := target(value, table)
		if !isRef {
			return value, chain
		}
		if !found || visited[key] {
			return "", chain
		}
		visited[key] = true
		value, _ = table.Get(key)
		chain = append(chain, Step{Key: key, Value: value})
	}
}

// target classifies value. isRef reports whether value is a reference at
// all; found reports whether it names a key of the table.
func target(value string, table *Table) (key string, isRef, found bool) {
	if value == "" {
		return "", false, false
	}
	if ref := common.ReferencePath(value); ref != "" {
		key, found = table.lookup(ref)
		return key, true, found
	}
	if strings.HasPrefix(value, "--") {
		if _, ok := table.Get(value); ok {
			return value, true, true
		}
	}
	return "", false, false
}
