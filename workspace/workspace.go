/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace holds the working token set: the model parsed from the
// sources, overlaid with the persisted snapshot, and every mutation of it.
//
// Each mutation replaces the model and then writes the whole working set to
// the persister. When that write fails the in-memory model has already
// changed and the error, which wraps store.ErrPersist, is returned so the
// caller can report it.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"bennypowers.dev/tokenbench/codesyntax"
	"bennypowers.dev/tokenbench/convert"
	"bennypowers.dev/tokenbench/internal/logger"
	"bennypowers.dev/tokenbench/parser"
	"bennypowers.dev/tokenbench/resolver"
	"bennypowers.dev/tokenbench/schema"
	"bennypowers.dev/tokenbench/sources"
	"bennypowers.dev/tokenbench/store"
	"bennypowers.dev/tokenbench/token"
	"bennypowers.dev/tokenbench/view"
)

// Refreshable lists the groups that can be re-parsed from their sources, in
// the order RefreshAll parses them. Shadow tokens always come from the
// bundled set.
var Refreshable = []token.GroupName{
	token.Primitives,
	token.Semantics,
	token.Radius,
	token.Spacing,
	token.Typography,
}

// Options configures Open.
type Options struct {
	// Sources supplies the raw token files. Nil means the bundled set.
	Sources *sources.Set

	// Persister stores the working set. Nil keeps it in memory only.
	Persister *store.Persister

	// Language selects the typography source. Empty means the language
	// recorded in the snapshot, or English.
	Language token.Language
}

// Status describes the persisted state of a workspace.
type Status struct {
	Language token.Language
	Revision string
	SavedAt  time.Time
	Counts   map[token.GroupName]int
}

// Workspace is the working token set. It is safe for concurrent use.
type Workspace struct {
	sources   *sources.Set
	persister *store.Persister
	refreshes singleflight.Group

	mu       sync.RWMutex
	base     token.Model
	model    token.Model
	index    *parser.Index
	language token.Language
	revision string
	savedAt  time.Time
}

// Open parses the sources, loads the stored snapshot and merges the two.
//
// A snapshot that cannot be decoded is ignored with a warning. When the
// requested language differs from the one the snapshot was saved with,
// typography is re-parsed for the requested language.
func Open(ctx context.Context, opts Options) (*Workspace, error) {
	w := &Workspace{
		sources:   opts.Sources,
		persister: opts.Persister,
	}
	if w.sources == nil {
		w.sources = sources.Builtin()
	}

	snap, err := w.load(ctx)
	if err != nil {
		return nil, err
	}

	lang := opts.Language
	if lang == "" && snap != nil && snap.Language != "" {
		lang = snap.Language
	}
	if lang == "" {
		lang = token.English
	}
	w.language = lang

	idx, err := w.readIndex()
	if err != nil {
		return nil, err
	}
	w.index = idx

	groups := make(map[token.GroupName]*token.Group, len(token.GroupNames))
	for _, name := range token.GroupNames {
		g, err := w.parse(name, lang, idx)
		if err != nil {
			return nil, err
		}
		groups[name] = g
	}
	w.base = token.NewModel(groups)
	w.model = store.Merge(w.base, snap)

	if snap != nil {
		w.revision = snap.Revision
		w.savedAt = snap.SavedAt
		if snap.Language != "" && snap.Language != lang && snap.Has(token.Typography) {
			logger.Info("snapshot typography is %s, using %s source", snap.Language, lang)
			w.model = w.model.With(token.Typography, groups[token.Typography])
		}
	}
	return w, nil
}

func (w *Workspace) load(ctx context.Context) (*store.Snapshot, error) {
	if w.persister == nil {
		return nil, nil
	}
	snap, err := w.persister.Load(ctx)
	if errors.Is(err, schema.ErrMalformedJSON) {
		logger.Warn("ignoring stored snapshot: %v", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return snap, nil
}

// readIndex derives the alias index from the raw primitives source.
func (w *Workspace) readIndex() (*parser.Index, error) {
	data, err := w.sources.Read(sources.RolePrimitives)
	if err != nil {
		return nil, err
	}
	raw, err := schema.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.sources.Path(sources.RolePrimitives), err)
	}
	return parser.BuildIndex(raw), nil
}

// parse reads and parses the source of one group.
func (w *Workspace) parse(name token.GroupName, lang token.Language, idx *parser.Index) (*token.Group, error) {
	role, err := sources.RoleFor(name, lang)
	if err != nil {
		return nil, err
	}
	data, err := w.sources.Read(role)
	if err != nil {
		return nil, err
	}
	g, err := parser.Parse(name, data, idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.sources.Path(role), err)
	}
	return g, nil
}

// Model returns the current token model.
func (w *Workspace) Model() token.Model {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.model
}

// Index returns the alias index of the current primitives source.
func (w *Workspace) Index() *parser.Index {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.index
}

// Language returns the current typography language.
func (w *Workspace) Language() token.Language {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.language
}

// Sources returns the source set the workspace reads.
func (w *Workspace) Sources() *sources.Set {
	return w.sources
}

// Status returns the language, snapshot revision and per-group token counts.
func (w *Workspace) Status() Status {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s := Status{
		Language: w.language,
		Revision: w.revision,
		SavedAt:  w.savedAt,
		Counts:   make(map[token.GroupName]int),
	}
	for _, name := range w.model.Names() {
		s.Counts[name] = w.model.Group(name).Len()
	}
	return s
}

// Rows returns the flattened rows of every present group.
func (w *Workspace) Rows() []view.Row {
	return view.FlattenModel(w.Model())
}

// Table returns the reference table of the current model.
func (w *Workspace) Table() *resolver.Table {
	return resolver.BuildTable(w.Model())
}

// Lookup finds a token by name, searching groups in display order.
func (w *Workspace) Lookup(name string) (token.GroupName, *token.Token, bool) {
	m := w.Model()
	for _, group := range m.Names() {
		if t := m.Group(group).Find(name); t != nil {
			return group, t, true
		}
	}
	return "", nil, false
}

// Export renders the current model as the files of an export archive.
func (w *Workspace) Export(syntax codesyntax.Syntax) ([]convert.File, error) {
	w.mu.RLock()
	m, lang, idx := w.model, w.language, w.index
	w.mu.RUnlock()
	return convert.Files(m, convert.Options{Syntax: syntax, Language: lang, Index: idx})
}

// commit replaces the model and persists it. The caller holds w.mu.
func (w *Workspace) commit(ctx context.Context, next token.Model) error {
	w.model = next
	if w.persister == nil {
		return nil
	}
	snap, err := w.persister.Save(ctx, next, w.language)
	if err != nil {
		return err
	}
	w.revision = snap.Revision
	w.savedAt = snap.SavedAt
	return nil
}

// UpdateGroup replaces a group wholesale.
func (w *Workspace) UpdateGroup(ctx context.Context, name token.GroupName, g *token.Group) error {
	if !name.Valid() {
		return fmt.Errorf("%w: %q", schema.ErrUnknownGroup, name)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.commit(ctx, w.model.With(name, g))
}

// ClearGroup replaces a group with an empty one.
func (w *Workspace) ClearGroup(ctx context.Context, name token.GroupName) error {
	return w.UpdateGroup(ctx, name, token.NewGroup(string(name)))
}

// SetValue changes the value of one token and returns the updated token.
func (w *Workspace) SetValue(ctx context.Context, group token.GroupName, name, value string) (*token.Token, error) {
	if !group.Valid() {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownGroup, group)
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	g := w.model.Group(group)
	var existing *token.Token
	if g != nil {
		existing = g.Find(name)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s in %s", schema.ErrTokenNotFound, name, group)
	}
	var updated *token.Token
	if group == token.Semantics {
		updated = w.index.Rebind(existing, value)
	} else {
		updated = existing.WithValue(value)
	}
	next, _ := g.WithToken(updated)
	return updated, w.commit(ctx, w.model.With(group, next))
}

// Reset discards the stored snapshot and returns to the parsed sources.
func (w *Workspace) Reset(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.persister != nil {
		if err := w.persister.Clear(ctx); err != nil {
			return fmt.Errorf("clearing store: %w", err)
		}
	}
	w.model = w.base
	w.revision = ""
	w.savedAt = time.Time{}
	return nil
}

// RefreshGroup re-parses one group from its source and replaces it.
//
// Concurrent refreshes of the same group share one parse. A source that
// cannot be read or decoded leaves the working set unchanged. Refreshing
// primitives also rebuilds the alias index.
func (w *Workspace) RefreshGroup(ctx context.Context, name token.GroupName) error {
	if !name.Valid() {
		return fmt.Errorf("%w: %q", schema.ErrUnknownGroup, name)
	}
	if name == token.Shadow {
		return fmt.Errorf("%w: %s", schema.ErrNotRefreshable, name)
	}

	lang := w.Language()
	key := string(name) + "/" + string(lang)
	_, err, shared := w.refreshes.Do(key, func() (any, error) {
		idx := w.Index()
		if name == token.Primitives {
			var err error
			if idx, err = w.readIndex(); err != nil {
				return nil, err
			}
		}
		g, err := w.parse(name, lang, idx)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if name == token.Typography && w.language != lang {
			logger.Debug("language changed during refresh, dropping %s typography", lang)
			return nil, nil
		}
		if name == token.Primitives {
			w.index = idx
		}
		logger.Debug("refreshed %s: %d tokens", name, g.Len())
		return nil, w.commit(ctx, w.model.With(name, g))
	})
	if shared {
		logger.Debug("refresh of %s shared with a concurrent caller", name)
	}
	return err
}

// Progress reports how far RefreshAll has got.
type Progress struct {
	Group   token.GroupName
	Done    int
	Total   int
	Percent int
}

// RefreshAll re-parses every refreshable group, then replaces them and
// persists the result in one write. Shadow is reset to the bundled set.
//
// The context is checked between groups; cancellation leaves the working
// set unchanged. progress, when not nil, is called after each group.
func (w *Workspace) RefreshAll(ctx context.Context, progress func(Progress)) error {
	lang := w.Language()
	total := len(Refreshable)
	report := func(done int, name token.GroupName) {
		if progress != nil {
			progress(Progress{Group: name, Done: done, Total: total, Percent: done * 100 / total})
		}
	}

	idx, err := w.readIndex()
	if err != nil {
		return err
	}
	groups := make(map[token.GroupName]*token.Group, total)
	for i, name := range Refreshable {
		if err := ctx.Err(); err != nil {
			return err
		}
		g, err := w.parse(name, lang, idx)
		if err != nil {
			return err
		}
		groups[name] = g
		report(i+1, name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	next := w.model
	for _, name := range Refreshable {
		if name == token.Typography && w.language != lang {
			continue
		}
		next = next.With(name, groups[name])
	}
	next = next.With(token.Shadow, w.base.Group(token.Shadow))
	w.index = idx
	return w.commit(ctx, next)
}

// SetLanguage switches the typography language, re-parsing typography from
// the new language's source.
func (w *Workspace) SetLanguage(ctx context.Context, lang token.Language) error {
	if !validLanguage(lang) {
		return fmt.Errorf("%w: %q", schema.ErrUnknownLanguage, lang)
	}
	if lang == w.Language() {
		return nil
	}

	g, err := w.parse(token.Typography, lang, nil)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.language = lang
	w.base = w.base.With(token.Typography, g)
	return w.commit(ctx, w.model.With(token.Typography, g))
}

func validLanguage(lang token.Language) bool {
	for _, l := range token.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
