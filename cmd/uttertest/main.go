// cmd/uttertest/main.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command uttertest runs a single utterance test case from a JSON file.
//
// Usage:
//
//	go run ./cmd/uttertest path/to/test.json
//
// Exit code 0 on pass, 1 on fail.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/comanda-voice/comanda/engine"
	"github.com/comanda-voice/comanda/lexicon"
)

// UtteranceTestFile is the on-disk test case format.
type UtteranceTestFile struct {
	Variant       string   `json:"variant"`
	Context       string   `json:"context"`
	Transcript    string   `json:"transcript"`
	WantIntent    string   `json:"want_intent"`
	WantContains  []string `json:"want_contains"`
	MinConfidence float64  `json:"min_confidence"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <test.json>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	var tc UtteranceTestFile
	if err := json.Unmarshal(data, &tc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(lexicon.Variant(tc.Variant), engine.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}
	if ctx := engine.Context(tc.Context); ctx != engine.ContextNone {
		eng.SetContext(ctx)
	}

	d := eng.ProcessDetailed(tc.Transcript)

	failed := false
	if tc.WantIntent != "" && d.Intent.Intent != tc.WantIntent {
		fmt.Printf("FAIL: intent %q, want %q\n", d.Intent.Intent, tc.WantIntent)
		failed = true
	}
	if tc.MinConfidence > 0 && d.Intent.Confidence < tc.MinConfidence {
		fmt.Printf("FAIL: confidence %.2f below %.2f\n", d.Intent.Confidence, tc.MinConfidence)
		failed = true
	}
	canonical := strings.ToLower(d.Canonical)
	for _, want := range tc.WantContains {
		if !strings.Contains(canonical, strings.ToLower(want)) {
			fmt.Printf("FAIL: canonical %q does not contain %q\n", d.Canonical, want)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Printf("PASS: %q -> %q (%s %.2f)\n", tc.Transcript, d.Canonical,
		d.Intent.Intent, d.Intent.Confidence)
}
