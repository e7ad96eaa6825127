// engine/stats.go
// Copyright(c) 2024-2026 comanda contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package engine

// Stats are the engine's running counters, mutated by every processing call
// and monotonic until reset.
type Stats struct {
	TotalProcessed            int `json:"totalProcessed" msgpack:"totalProcessed"`
	DialectWordsFound         int `json:"dialectWordsFound" msgpack:"dialectWordsFound"`
	ReplacementsMade          int `json:"replacementsMade" msgpack:"replacementsMade"`
	ConfidenceBoosts          int `json:"confidenceBoosts" msgpack:"confidenceBoosts"`
	ContextMatches            int `json:"contextMatches" msgpack:"contextMatches"`
	GrammarCorrections        int `json:"grammarCorrections" msgpack:"grammarCorrections"`
	SlangOrLiaisonCorrections int `json:"slangOrLiaisonCorrections" msgpack:"slangOrLiaisonCorrections"`
}

// StatsSnapshot is Stats plus derived ratios. Ratios with a zero denominator
// are reported as 0, never an error.
type StatsSnapshot struct {
	Stats
	ReplacementRate float64 `json:"replacementRate"`
	DialectRate     float64 `json:"dialectRate"`
	GrammarRate     float64 `json:"grammarRate"`
	ContextRate     float64 `json:"contextRate"`
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Statistics returns the current counters and derived ratios.
func (e *Engine) Statistics() StatsSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return StatsSnapshot{
		Stats:           e.stats,
		ReplacementRate: ratio(e.stats.ReplacementsMade, e.stats.TotalProcessed),
		DialectRate:     ratio(e.stats.DialectWordsFound, e.stats.TotalProcessed),
		GrammarRate:     ratio(e.stats.GrammarCorrections, e.stats.TotalProcessed),
		ContextRate:     ratio(e.stats.ContextMatches, e.stats.TotalProcessed),
	}
}

// ResetStatistics zeroes all counters.
func (e *Engine) ResetStatistics() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats = Stats{}
}
