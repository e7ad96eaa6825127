// engine/engine.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package engine turns raw speech-to-text transcripts into canonical
// utterances, classified intents, and extracted order entities. Each Engine
// owns its own tables, matchers, boost store, and statistics; there is no
// process-wide state, so one engine per session needs no external locking.
package engine

import (
	"sync"

	"github.com/comanda-voice/comanda/grammar"
	"github.com/comanda-voice/comanda/intent"
	"github.com/comanda-voice/comanda/lexicon"
	"github.com/comanda-voice/comanda/numeral"
)

// Options are the engine toggles. The zero value disables everything; use
// DefaultOptions as the starting point.
type Options struct {
	// StrictMode requires intent trigger phrases to appear contiguously in
	// the text instead of as a word subset.
	StrictMode bool

	// PreserveOriginal keeps the raw transcript in detailed results.
	PreserveOriginal bool

	// ContextAware gates food-term substitution on an active food or
	// restaurant context.
	ContextAware bool

	// EnableRegionalDialects applies the variant's dialect table.
	EnableRegionalDialects bool

	// HandleGrammar applies agreement and conjugation correction.
	HandleGrammar bool

	// HandleContractions expands contractions and elided forms during
	// normalization.
	HandleContractions bool

	// HandleLiaison applies French liaison and informal-speech correction.
	HandleLiaison bool

	// HandleSlang applies English slang correction.
	HandleSlang bool
}

// DefaultOptions enables everything except strict matching.
func DefaultOptions() Options {
	return Options{
		PreserveOriginal:       true,
		ContextAware:           true,
		EnableRegionalDialects: true,
		HandleGrammar:          true,
		HandleContractions:     true,
		HandleLiaison:          true,
		HandleSlang:            true,
	}
}

// Engine is one utterance-processing instance. All exported methods are safe
// for concurrent use; matcher recompilation and statistics updates are
// serialized with in-flight processing calls.
type Engine struct {
	mu sync.Mutex

	opts    Options
	variant lexicon.Variant
	store   *lexicon.Store

	tables     *lexicon.Tables
	matchers   *lexicon.Matchers
	grammar    grammar.Corrector
	numerals   *numeral.Converter
	classifier *intent.Classifier
	extractor  *intent.Extractor

	boost   *BoostStore
	context Context
	stats   Stats

	caser properCaser
}

// New creates an engine for a variant. Unknown variants are an error.
func New(v lexicon.Variant, opts Options) (*Engine, error) {
	e := &Engine{
		opts:  opts,
		store: lexicon.NewStore(),
		boost: NewBoostStore(),
	}
	if err := e.install(v); err != nil {
		return nil, err
	}
	return e, nil
}

// install wires up all variant-derived state. Callers hold e.mu (or are the
// constructor). Everything is built before any field is assigned so a failed
// install leaves the engine untouched.
func (e *Engine) install(v lexicon.Variant) error {
	tables, matchers, err := e.store.Get(v)
	if err != nil {
		return err
	}
	g := grammar.ForLanguage(v.Language())

	e.variant = v
	e.tables = tables
	e.matchers = matchers
	e.grammar = g
	e.numerals = numeral.ForVariant(v)
	e.classifier = intent.NewClassifier(v, g, e.opts.StrictMode)
	e.extractor = intent.NewExtractor(v, tables)
	e.caser = newProperCaser(v, tables.ProperNouns)
	return nil
}

// Variant returns the active variant.
func (e *Engine) Variant() lexicon.Variant {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.variant
}

// Options returns the engine's option set.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// SetVariant switches the active variant, recompiling matchers. An
// unsupported variant returns false and leaves the current variant active;
// the engine never silently falls back mid-session.
func (e *Engine) SetVariant(v lexicon.Variant) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.install(v); err != nil {
		return false
	}
	// A variant switch invalidates context-derived boosts; rebuild them
	// from the new food table. Custom vocabulary is variant-independent and
	// survives the switch.
	e.boost.PurgeContext()
	if e.context.Food() {
		e.boost.LoadFood(e.tables)
	}
	return true
}

// SetContext activates a vocabulary context. Food and restaurant contexts
// bulk-load the food lexicon into the boost store; loading is idempotent.
// Switching to a non-food context purges the context-derived entries so food
// substitution stops; custom vocabulary is kept.
func (e *Engine) SetContext(ctx Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.context = ctx
	if ctx.Food() {
		e.boost.LoadFood(e.tables)
	} else {
		e.boost.PurgeContext()
	}
}

// ClearContext empties the boost store and unsets the context.
func (e *Engine) ClearContext() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.context = ContextNone
	e.boost.Clear()
}

// Context returns the active context.
func (e *Engine) Context() Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.context
}

// AddCustomVocabulary registers a runtime override mapping. It takes effect
// on the next processing call.
func (e *Engine) AddCustomVocabulary(term, replacement string, confidence float64) {
	if term == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.boost.Add(term, replacement, confidence, false)
}

// RemoveCustomVocabulary removes a runtime override; reports whether the
// term was present.
func (e *Engine) RemoveCustomVocabulary(term string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.boost.Remove(term)
}

// ClassifyIntent classifies text, which is normally the canonical output of
// ProcessTranscript, against the active taxonomy.
func (e *Engine) ClassifyIntent(text string) intent.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.classifier.Classify(text, e.context.Food())
}

// ExtractEntities scans text, normally canonical, for order entities.
func (e *Engine) ExtractEntities(text string) intent.Bag {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.extractor.Extract(text)
}

// Detailed is the one-call result the voice UI consumes.
type Detailed struct {
	Original  string        `json:"original,omitempty"`
	Canonical string        `json:"canonical"`
	Intent    intent.Result `json:"intent"`
	Entities  intent.Bag    `json:"entities"`
}

// ProcessDetailed runs the full pipeline and returns the canonical text with
// its classification and entities.
func (e *Engine) ProcessDetailed(raw string) Detailed {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats.TotalProcessed++
	canonical := e.processLocked(raw)
	d := Detailed{
		Canonical: canonical,
		Intent:    e.classifier.Classify(canonical, e.context.Food()),
		Entities:  e.extractor.Extract(canonical),
	}
	if e.opts.PreserveOriginal {
		d.Original = raw
	}
	d.Intent.OriginalText = raw
	return d
}
