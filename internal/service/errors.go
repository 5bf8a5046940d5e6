package service

import "errors"

var (
	// ErrEmptyTitle is returned when an ingestion request has no title.
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyContent is returned when an ingestion request has no content.
	ErrEmptyContent = errors.New("content is required")

	// ErrEmptyQuestion is returned when an ask request has no question.
	ErrEmptyQuestion = errors.New("question is required")
)
