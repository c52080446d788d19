package mocks

import (
	"context"
)

// MockGenerator is a mock implementation of generation.TextGenerator
type MockGenerator struct {
	Output          string
	Err             error
	Calls           int
	LastInstruction string
	LastTokenBudget int
}

func NewMockGenerator(output string) *MockGenerator {
	return &MockGenerator{Output: output}
}

func (m *MockGenerator) Generate(ctx context.Context, instruction string, tokenBudget int) (string, error) {
	m.Calls++
	m.LastInstruction = instruction
	m.LastTokenBudget = tokenBudget
	if m.Err != nil {
		return "", m.Err
	}
	return m.Output, nil
}
