package core

import "errors"

// Sentinel errors for pipeline outcomes. The boundary layer maps these to
// client-visible status classes with errors.Is.
var (
	// ErrInvalidRepoURL means the request named something that is not a
	// recognizable repository URL. Raised before any resource is acquired.
	ErrInvalidRepoURL = errors.New("invalid repository URL")

	// ErrCloneFailed means the VCS tool could not produce a working clone.
	ErrCloneFailed = errors.New("repository clone failed")

	// ErrInsufficientHistory means fewer than 2 commits exist, so not even
	// one pair can be formed.
	ErrInsufficientHistory = errors.New("not enough commit history to analyze")

	// ErrNoPairsAnalyzed means every pair analysis failed or was skipped,
	// leaving no usable signal to aggregate.
	ErrNoPairsAnalyzed = errors.New("no commit pairs could be analyzed")
)
