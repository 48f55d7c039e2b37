// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	randommock "github.com/KirkDiggler/rpg-encounters/internal/pkg/random/mock"
)

// Draw is one expected NextInt call and the value it returns
type Draw struct {
	Min, Max int
	Result   int
}

// ExpectDraws sets up NextInt expectations that must happen in order
func ExpectDraws(provider *randommock.MockProvider, draws ...Draw) {
	calls := make([]any, len(draws))
	for i, d := range draws {
		calls[i] = provider.EXPECT().NextInt(d.Min, d.Max).Return(d.Result)
	}
	gomock.InOrder(calls...)
}
