// engine/config_test.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/comanda-voice/comanda/lexicon"
)

func encodeConfig(t *testing.T, cfg Configuration) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := msgpack.NewEncoder(zw).Encode(cfg); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestConfigurationRoundTrip(t *testing.T) {
	src, err := New(lexicon.EnGB, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	src.SetContext(ContextFood)
	src.AddCustomVocabulary("red bull", "energy drink", 0.9)
	src.ProcessTranscript("crisps please")
	src.ProcessTranscript("cuppa please")

	blob, err := src.ExportConfiguration()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst, err := New(lexicon.EnUS, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.ImportConfiguration(blob); err != nil {
		t.Fatalf("import: %v", err)
	}

	if dst.Variant() != lexicon.EnGB {
		t.Errorf("variant = %s, want en-GB", dst.Variant())
	}
	if dst.Context() != ContextFood {
		t.Errorf("context = %q, want food", dst.Context())
	}
	if got, want := dst.Statistics().Stats, src.Statistics().Stats; got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
	if got := dst.ProcessTranscript("red bull please"); got != "Energy drink please" {
		t.Errorf("custom vocab not restored: got %q", got)
	}
	if got := dst.ProcessTranscript("crisps please"); got != "Potato chips please" {
		t.Errorf("dialect after import: got %q", got)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	e, err := New(lexicon.EnUS, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	if err := e.ImportConfiguration(nil); err == nil {
		t.Error("empty blob accepted")
	}
	if err := e.ImportConfiguration([]byte("not a configuration")); err == nil {
		t.Error("garbage blob accepted")
	}
	if e.Variant() != lexicon.EnUS {
		t.Errorf("failed import changed variant to %s", e.Variant())
	}
}

func TestImportRejectsBadVersion(t *testing.T) {
	e, err := New(lexicon.EnUS, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	blob := encodeConfig(t, Configuration{Version: 99, Variant: lexicon.EnUS})
	if err := e.ImportConfiguration(blob); !errors.Is(err, ErrConfigVersion) {
		t.Errorf("got %v, want ErrConfigVersion", err)
	}
}

func TestImportRejectsUnknownVariant(t *testing.T) {
	e, err := New(lexicon.EnUS, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	e.SetContext(ContextRestaurant)

	blob := encodeConfig(t, Configuration{Version: configVersion, Variant: "xx-XX"})
	if err := e.ImportConfiguration(blob); !errors.Is(err, ErrUnsupportedVariant) {
		t.Errorf("got %v, want ErrUnsupportedVariant", err)
	}
	if e.Variant() != lexicon.EnUS || e.Context() != ContextRestaurant {
		t.Error("failed import mutated engine state")
	}
}

func TestExportSnapshotIsolated(t *testing.T) {
	e, err := New(lexicon.EnUS, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	e.AddCustomVocabulary("red bull", "energy drink", 0.9)

	blob, err := e.ExportConfiguration()
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the engine after export must not affect the blob.
	e.RemoveCustomVocabulary("red bull")

	dst, err := New(lexicon.EnUS, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := dst.ImportConfiguration(blob); err != nil {
		t.Fatal(err)
	}
	if got := dst.ProcessTranscript("red bull please"); got != "Energy drink please" {
		t.Errorf("snapshot not isolated: got %q", got)
	}
}
