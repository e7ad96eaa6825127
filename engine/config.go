// engine/config.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package engine

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/brunoga/deep"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/comanda-voice/comanda/lexicon"
)

// Configuration blobs are msgpack encoded and zstd compressed; callers
// should treat them as opaque and versioned.
const configVersion = 1

var (
	ErrConfigVersion      = errors.New("unsupported configuration version")
	ErrUnsupportedVariant = errors.New("unsupported variant")
)

// Configuration is the serializable engine snapshot.
type Configuration struct {
	Version          int             `msgpack:"version"`
	Variant          lexicon.Variant `msgpack:"variant"`
	Context          Context         `msgpack:"context"`
	CustomVocabulary []BoostEntry    `msgpack:"customVocabulary"`
	Options          Options         `msgpack:"options"`
	Stats            Stats           `msgpack:"stats"`
}

// configurationLocked snapshots the engine state. The copy is deep so later
// engine mutation cannot alias into an exported snapshot.
func (e *Engine) configurationLocked() Configuration {
	return Configuration{
		Version:          configVersion,
		Variant:          e.variant,
		Context:          e.context,
		CustomVocabulary: deep.MustCopy(e.boost.Custom()),
		Options:          e.opts,
		Stats:            e.stats,
	}
}

// ExportConfiguration serializes the current variant, custom vocabulary,
// context, toggles, and statistics to an opaque blob.
func (e *Engine) ExportConfiguration() ([]byte, error) {
	e.mu.Lock()
	cfg := e.configurationLocked()
	e.mu.Unlock()

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if err := msgpack.NewEncoder(zw).Encode(cfg); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportConfiguration restores a previously exported snapshot. The snapshot
// is validated and all replacement state is built before anything is
// assigned: a failed import leaves the engine exactly as it was.
func (e *Engine) ImportConfiguration(blob []byte) error {
	if len(blob) == 0 {
		return errors.New("empty configuration blob")
	}

	zr, err := zstd.NewReader(bytes.NewReader(blob), zstd.WithDecoderConcurrency(0))
	if err != nil {
		return err
	}
	defer zr.Close()

	var cfg Configuration
	if err := msgpack.NewDecoder(zr).Decode(&cfg); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}
	if cfg.Version != configVersion {
		return fmt.Errorf("%w: %d", ErrConfigVersion, cfg.Version)
	}
	if !cfg.Variant.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedVariant, cfg.Variant)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Build the complete replacement state up front. store.Get validates
	// the variant tables; nothing below it can fail.
	saved := e.opts
	e.opts = cfg.Options
	if err := e.install(cfg.Variant); err != nil {
		e.opts = saved
		return err
	}

	boost := NewBoostStore()
	for _, entry := range cfg.CustomVocabulary {
		boost.Add(entry.Term, entry.Replacement, entry.Confidence, false)
	}
	if cfg.Context.Food() {
		boost.LoadFood(e.tables)
	}

	e.boost = boost
	e.context = cfg.Context
	e.stats = cfg.Stats
	return nil
}
