/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGroup indicates a group name outside the six token groups.
var ErrUnknownGroup = errors.New("unknown token group")

// GroupName identifies one of the six top-level token groups.
type GroupName string

// Token groups.
const (
	Primitives GroupName = "primitives"
	Semantics  GroupName = "semantics"
	Typography GroupName = "typography"
	Radius     GroupName = "radius"
	Spacing    GroupName = "spacing"
	Shadow     GroupName = "shadow"
)

// GroupNames lists the token groups in display order.
var GroupNames = []GroupName{Primitives, Semantics, Typography, Radius, Spacing, Shadow}

// DefaultType returns the token type used for tokens of the group.
func (n GroupName) DefaultType() Type {
	switch n {
	case Primitives, Semantics:
		return TypeColor
	case Typography:
		return TypeTypography
	case Radius:
		return TypeRadius
	case Spacing:
		return TypeSpacing
	case Shadow:
		return TypeShadow
	default:
		return ""
	}
}

// Valid reports whether n is one of the six token groups.
func (n GroupName) Valid() bool {
	for _, name := range GroupNames {
		if n == name {
			return true
		}
	}
	return false
}

// ParseGroupName parses a group name. Matching is case-insensitive.
func ParseGroupName(s string) (GroupName, error) {
	n := GroupName(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}
	return n, nil
}

// Model is the normalized token model: a mapping from group name to group.
//
// A Model is an immutable value. Methods that change it return a new Model
// and leave the receiver untouched.
type Model struct {
	groups map[GroupName]*Group
}

// NewModel creates a model holding the given groups.
func NewModel(groups map[GroupName]*Group) Model {
	m := Model{groups: make(map[GroupName]*Group, len(groups))}
	for name, g := range groups {
		m.groups[name] = g
	}
	return m
}

// Group returns the group with the given name, or nil when it is absent.
func (m Model) Group(name GroupName) *Group {
	return m.groups[name]
}

// Has reports whether the model holds the group.
func (m Model) Has(name GroupName) bool {
	_, ok := m.groups[name]
	return ok
}

// With returns a copy of the model in which name maps to g.
func (m Model) With(name GroupName, g *Group) Model {
	next := Model{groups: make(map[GroupName]*Group, len(m.groups)+1)}
	for k, v := range m.groups {
		next.groups[k] = v
	}
	next.groups[name] = g
	return next
}

// Names returns the names of present groups in display order.
func (m Model) Names() []GroupName {
	var names []GroupName
	for _, name := range GroupNames {
		if m.Has(name) {
			names = append(names, name)
		}
	}
	return names
}

// Len returns the number of tokens across all groups.
func (m Model) Len() int {
	n := 0
	for _, g := range m.groups {
		n += g.Len()
	}
	return n
}
