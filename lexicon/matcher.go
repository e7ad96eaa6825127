// lexicon/matcher.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package lexicon

import (
	"sort"
	"strings"
)

const wordPunct = ".,!?;:'\"«»"

// phrase is one source phrase and its replacement, pre-split into words.
type phrase struct {
	words       []string
	replacement string
}

// WordMatcher performs whole-word, case-insensitive replacement of one- and
// multi-word phrases. Multi-word phrases are matched longest-first so that
// "french fries" wins over a bare "fries" entry starting at the same token.
type WordMatcher struct {
	// phrases is keyed by the first word of each source phrase.
	phrases map[string][]phrase
}

// CompileWordMap builds a WordMatcher from source -> replacement pairs. For
// every multi-word replacement an identity entry is added so that already
// canonical text is left alone rather than partially rematched; identity
// matches do not count as replacements.
func CompileWordMap(m map[string]string) *WordMatcher {
	wm := &WordMatcher{phrases: make(map[string][]phrase, len(m))}
	add := func(src, repl string) {
		words := strings.Fields(strings.ToLower(src))
		if len(words) == 0 {
			return
		}
		wm.phrases[words[0]] = append(wm.phrases[words[0]], phrase{words: words, replacement: repl})
	}
	for src, repl := range m {
		add(src, repl)
	}
	for _, repl := range m {
		if strings.Contains(repl, " ") {
			if _, ok := m[repl]; !ok {
				add(repl, repl)
			}
		}
	}
	for first := range wm.phrases {
		ps := wm.phrases[first]
		sort.SliceStable(ps, func(i, j int) bool { return len(ps[i].words) > len(ps[j].words) })
	}
	return wm
}

// cleanToken strips surrounding punctuation for matching purposes.
func cleanToken(w string) string {
	return strings.Trim(strings.ToLower(w), wordPunct)
}

// Replace applies the matcher to text and returns the rewritten text along
// with the number of (non-identity) replacements made. Unmatched words pass
// through unchanged.
func (m *WordMatcher) Replace(text string) (string, int) {
	if len(m.phrases) == 0 || text == "" {
		return text, 0
	}
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	count := 0

	for i := 0; i < len(words); {
		matched := false
		for _, p := range m.phrases[cleanToken(words[i])] {
			if i+len(p.words) > len(words) {
				continue
			}
			ok := true
			for j, pw := range p.words {
				if cleanToken(words[i+j]) != pw {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			out = append(out, strings.Fields(p.replacement)...)
			if strings.Join(p.words, " ") != strings.ToLower(p.replacement) {
				count++
			}
			i += len(p.words)
			matched = true
			break
		}
		if !matched {
			out = append(out, words[i])
			i++
		}
	}
	return strings.Join(out, " "), count
}

// SubstringMatcher performs substring-level replacement, used for phonetic
// corrections where a mispronunciation can appear inside a larger token.
type SubstringMatcher struct {
	// Longer sources are applied first so overlapping corrections behave
	// deterministically.
	sources []string
	repl    map[string]string
}

func CompileSubstringMap(m map[string]string) *SubstringMatcher {
	sm := &SubstringMatcher{repl: make(map[string]string, len(m))}
	for src, repl := range m {
		src = strings.ToLower(src)
		sm.sources = append(sm.sources, src)
		sm.repl[src] = repl
	}
	sort.Slice(sm.sources, func(i, j int) bool {
		if len(sm.sources[i]) != len(sm.sources[j]) {
			return len(sm.sources[i]) > len(sm.sources[j])
		}
		return sm.sources[i] < sm.sources[j]
	})
	return sm
}

// Replace rewrites every occurrence of each source fragment and returns the
// total number of fragments replaced.
func (m *SubstringMatcher) Replace(text string) (string, int) {
	count := 0
	for _, src := range m.sources {
		if n := strings.Count(text, src); n > 0 {
			text = strings.ReplaceAll(text, src, m.repl[src])
			count += n
		}
	}
	return text, count
}
