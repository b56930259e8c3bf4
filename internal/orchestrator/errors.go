package orchestrator

import "errors"

var (
	// ErrNoEvidenceSource is returned when a query is submitted with no
	// documents and web search disabled. No network or model calls are
	// made in that case.
	ErrNoEvidenceSource = errors.New("orchestrator: no documents provided and web search disabled")

	// ErrClassifierRequired is returned when a classifier is not provided.
	ErrClassifierRequired = errors.New("orchestrator: classifier required")

	// ErrSynthesizerRequired is returned when a synthesizer is not provided.
	ErrSynthesizerRequired = errors.New("orchestrator: synthesizer required")

	// ErrIndexBuilderRequired is returned when an index builder is not provided.
	ErrIndexBuilderRequired = errors.New("orchestrator: index builder required")

	// ErrChunkerRequired is returned when a chunker is not provided.
	ErrChunkerRequired = errors.New("orchestrator: chunker required")
)
