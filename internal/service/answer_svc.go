package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/markusluicellas/luibot/internal/embedding"
	"github.com/markusluicellas/luibot/internal/llm"
)

// FallbackAnswer is returned when the generation provider fails or produces
// nothing. Retrieval and embedding failures are real errors; a generation
// failure only degrades the answer.
const FallbackAnswer = "I don't have a confident answer to that yet."

const systemPrompt = "You are LuiBot, the internal FAQ assistant. Answer briefly and " +
	"with concrete steps, using ONLY the supplied context. If the context does not " +
	"cover the question, say so explicitly. End with 1-3 source titles you used."

// Dispatcher pushes an answer to the external channel without blocking.
type Dispatcher interface {
	Configured() bool
	Dispatch(text string)
}

// AnswerService orchestrates the read path: embed the question, retrieve the
// grounding context, generate, and optionally push the answer out.
type AnswerService struct {
	embedder   embedding.Embedder
	retrieval  *RetrievalService
	generator  llm.Generator
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewAnswerService(embedder embedding.Embedder, retrieval *RetrievalService, generator llm.Generator, dispatcher Dispatcher) *AnswerService {
	return &AnswerService{
		embedder:   embedder,
		retrieval:  retrieval,
		generator:  generator,
		dispatcher: dispatcher,
		logger:     slog.Default().With("component", "answer"),
	}
}

// Answer produces a grounded answer for question. When postToChannel is set
// and a channel is configured, the answer is additionally pushed out
// fire-and-forget after the response is ready.
func (s *AnswerService) Answer(ctx context.Context, question string, postToChannel bool) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	queryVector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}

	hits, contextBlock, err := s.retrieval.ContextBlock(ctx, queryVector)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}

	answer := s.generate(ctx, question, contextBlock)
	s.logger.Info("question answered", "sources", len(hits), "degraded", answer == FallbackAnswer)

	if postToChannel && s.dispatcher != nil && s.dispatcher.Configured() {
		s.dispatcher.Dispatch(answer)
	}
	return answer, nil
}

func (s *AnswerService) generate(ctx context.Context, question, contextBlock string) string {
	if s.generator == nil {
		s.logger.Warn("no generator configured, returning fallback answer")
		return FallbackAnswer
	}

	user := fmt.Sprintf("Question: \"\"\"%s\"\"\"\n\nUse ONLY this information:\n%s", question, contextBlock)
	answer, err := s.generator.Generate(ctx, systemPrompt, user)
	if err != nil {
		s.logger.Warn("generation failed, returning fallback answer", "err", err)
		return FallbackAnswer
	}
	return answer
}
