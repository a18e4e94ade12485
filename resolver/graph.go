/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "fmt"

// DependencyGraph represents a directed graph of reference keys.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        []string
}

// BuildDependencyGraph links every table key whose value is a reference to
// the key that reference names.
func BuildDependencyGraph(table *Table) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        table.Keys(),
	}

	for _, key := range graph.nodes {
		value, _ := table.Get(key)
		dep, isRef, found := target(value, table)
		if !isRef || !found {
			continue
		}
		graph.dependencies[key] = append(graph.dependencies[key], dep)
		graph.dependents[dep] = append(graph.dependents[dep], key)
	}

	return graph
}

// Dependencies returns the keys that the given key references.
func (g *DependencyGraph) Dependencies(key string) []string {
	if deps, ok := g.dependencies[key]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the keys that reference the given key.
func (g *DependencyGraph) Dependents(key string) []string {
	if deps, ok := g.dependents[key]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the first cycle in key order, or nil if there is none.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}
