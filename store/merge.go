/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import "bennypowers.dev/tokenbench/token"

// Policy decides where a group comes from when a snapshot is merged over
// the base model.
type Policy int

const (
	// FromBase always takes the base group.
	FromBase Policy = iota
	// FromSnapshotIfPresent takes the snapshot group whenever the snapshot
	// holds one, even an empty one.
	FromSnapshotIfPresent
	// FromSnapshotIfNonEmpty takes the snapshot group only when it holds
	// at least one token.
	FromSnapshotIfNonEmpty
)

func (p Policy) String() string {
	switch p {
	case FromSnapshotIfPresent:
		return "snapshot if present"
	case FromSnapshotIfNonEmpty:
		return "snapshot if non-empty"
	default:
		return "base"
	}
}

// Rule holds the policies of one group for refreshed and legacy snapshots.
type Rule struct {
	Refreshed Policy
	Legacy    Policy
}

// defaultRule applies to every group without an entry in Rules.
var defaultRule = Rule{Refreshed: FromSnapshotIfPresent, Legacy: FromSnapshotIfNonEmpty}

// Rules lists the groups whose merge differs from the default. Shadow
// tokens are not editable, so the bundled set always wins.
var Rules = map[token.GroupName]Rule{
	token.Shadow: {Refreshed: FromBase, Legacy: FromBase},
}

// RuleFor returns the merge rule of a group.
func RuleFor(name token.GroupName) Rule {
	if r, ok := Rules[name]; ok {
		return r
	}
	return defaultRule
}

// Merge overlays a snapshot on the base model. Groups the snapshot does not
// provide fall back to base. A nil snapshot yields base unchanged.
func Merge(base token.Model, snap *Snapshot) token.Model {
	if snap == nil {
		return base
	}
	merged := base
	for _, name := range token.GroupNames {
		rule := RuleFor(name)
		policy := rule.Legacy
		if snap.Refreshed {
			policy = rule.Refreshed
		}
		if g, ok := pick(policy, snap, name); ok {
			merged = merged.With(name, g)
		}
	}
	return merged
}

func pick(policy Policy, snap *Snapshot, name token.GroupName) (*token.Group, bool) {
	g, ok := snap.Groups[name]
	switch {
	case !ok:
		return nil, false
	case policy == FromSnapshotIfPresent:
		return g, true
	case policy == FromSnapshotIfNonEmpty:
		return g, !g.IsEmpty()
	default:
		return nil, false
	}
}
