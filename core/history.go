package core

import (
	"github.com/Nemesis2003/smartci-backend/schema"
)

// History window bounds.
const (
	// CommitWindow is the maximum number of recent commits retrieved.
	CommitWindow = 30

	// MaxPairs caps how many adjacent pairs are analyzed. Oldest pairs
	// beyond the cap are dropped, not sampled.
	MaxPairs = 20
)

// BuildCommitPairs derives ordered adjacent (head, base) pairs from a
// newest-first commit sequence. Pair i has head commits[i] and base
// commits[i+1], so more recent pairs carry lower indices and are analyzed
// first. Returns nil when fewer than 2 commits are given.
func BuildCommitPairs(commits []string) []schema.CommitPair {
	if len(commits) < 2 {
		return nil
	}

	n := min(len(commits)-1, MaxPairs)
	pairs := make([]schema.CommitPair, 0, n)
	for i := range n {
		pairs = append(pairs, schema.CommitPair{
			Head:  commits[i],
			Base:  commits[i+1],
			Index: i,
		})
	}
	return pairs
}
