// cmd/comanda/main.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command comanda processes speech-to-text transcripts into canonical
// utterances, classified intents, and extracted order entities. Transcripts
// are read one per line from stdin (or taken from the command line) and
// results are printed as JSON, one object per line.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/comanda-voice/comanda/engine"
	"github.com/comanda-voice/comanda/lexicon"
	"github.com/comanda-voice/comanda/log"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	variant    = flag.String("variant", "en-US", "language variant: en-US, en-GB, fr-FR, fr-CH")
	context    = flag.String("context", "", "vocabulary context: restaurant, food, or empty")
	vocabFile  = flag.String("vocab", "", "YAML file with custom vocabulary entries")
	logLevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir     = flag.String("logdir", "", "log file directory")
	showStats  = flag.Bool("stats", false, "print statistics after processing")
	plainText  = flag.Bool("plain", false, "print canonical text only, no JSON")
)

// vocabEntry matches the custom vocabulary YAML format:
//
//	- term: coke zero
//	  replacement: cola zero
//	  confidence: 0.9
type vocabEntry struct {
	Term        string  `yaml:"term"`
	Replacement string  `yaml:"replacement"`
	Confidence  float64 `yaml:"confidence"`
}

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	session := uuid.New().String()
	lg.Infof("session %s: variant %s context %q", session, *variant, *context)

	eng, err := engine.New(lexicon.Variant(*variant), engine.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *variant, err)
		os.Exit(1)
	}

	switch *context {
	case "":
	case "restaurant":
		eng.SetContext(engine.ContextRestaurant)
	case "food":
		eng.SetContext(engine.ContextFood)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown context\n", *context)
		os.Exit(1)
	}

	if *vocabFile != "" {
		if err := loadVocabulary(eng, *vocabFile); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *vocabFile, err)
			os.Exit(1)
		}
	}

	out := json.NewEncoder(os.Stdout)
	process := func(transcript string) {
		transcript = strings.TrimSpace(transcript)
		if transcript == "" {
			return
		}
		d := eng.ProcessDetailed(transcript)
		lg.Debugf("session %s: %q -> %q (%s %.2f)", session, transcript,
			d.Canonical, d.Intent.Intent, d.Intent.Confidence)
		if *plainText {
			fmt.Println(d.Canonical)
		} else if err := out.Encode(d); err != nil {
			lg.Errorf("encoding result: %v", err)
		}
	}

	if args := flag.Args(); len(args) > 0 {
		process(strings.Join(args, " "))
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			process(sc.Text())
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if *showStats {
		if err := out.Encode(eng.Statistics()); err != nil {
			lg.Errorf("encoding statistics: %v", err)
		}
	}
}

func loadVocabulary(eng *engine.Engine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []vocabEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return err
	}
	for _, e := range entries {
		eng.AddCustomVocabulary(e.Term, e.Replacement, e.Confidence)
	}
	return nil
}
