package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCommits returns n synthetic commit hashes, newest first.
func makeCommits(n int) []string {
	commits := make([]string, n)
	for i := range n {
		commits[i] = fmt.Sprintf("sha%03d", i)
	}
	return commits
}

func TestBuildCommitPairs_TooFewCommits(t *testing.T) {
	assert.Nil(t, BuildCommitPairs(nil))
	assert.Nil(t, BuildCommitPairs([]string{"only"}))
}

func TestBuildCommitPairs_AdjacentNewestFirst(t *testing.T) {
	commits := makeCommits(5)
	pairs := BuildCommitPairs(commits)
	require.Len(t, pairs, 4)

	for i, pair := range pairs {
		assert.Equal(t, i, pair.Index)
		assert.Equal(t, commits[i], pair.Head)
		assert.Equal(t, commits[i+1], pair.Base)
	}
}

func TestBuildCommitPairs_PairCount(t *testing.T) {
	// min(n-1, 20) pairs for every valid history length.
	for _, n := range []int{2, 3, 10, 20, 21, 30} {
		pairs := BuildCommitPairs(makeCommits(n))
		assert.Len(t, pairs, min(n-1, MaxPairs), "history of %d commits", n)
	}
}

func TestBuildCommitPairs_CapDropsOldest(t *testing.T) {
	commits := makeCommits(30)
	pairs := BuildCommitPairs(commits)
	require.Len(t, pairs, MaxPairs)

	// The newest pairs survive; everything past the cap is dropped.
	assert.Equal(t, commits[0], pairs[0].Head)
	assert.Equal(t, commits[MaxPairs-1], pairs[MaxPairs-1].Head)
	assert.Equal(t, commits[MaxPairs], pairs[MaxPairs-1].Base)
}
