package service

import (
	"context"
	"hash/fnv"
)

// mockEmbedder is a test double for embedding.Embedder. Custom behavior is
// injected via the function field; the default is deterministic per text.
type mockEmbedder struct {
	EmbedFunc func(ctx context.Context, text string) ([]float32, error)
	calls     int
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	m.calls++
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	return deterministicVector(text, 4), nil
}

func deterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := range vector {
		seed = seed*1664525 + 1013904223
		vector[i] = float32(seed%1000)/1000.0 + 0.001
	}
	return vector
}

// mockGenerator is a test double for llm.Generator.
type mockGenerator struct {
	GenerateFunc func(ctx context.Context, system, user string) (string, error)
	lastSystem   string
	lastUser     string
}

func (m *mockGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	m.lastSystem = system
	m.lastUser = user
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, system, user)
	}
	return "a grounded answer", nil
}

// mockDispatcher records fire-and-forget pushes.
type mockDispatcher struct {
	configured bool
	pushed     []string
}

func (m *mockDispatcher) Configured() bool     { return m.configured }
func (m *mockDispatcher) Dispatch(text string) { m.pushed = append(m.pushed, text) }
