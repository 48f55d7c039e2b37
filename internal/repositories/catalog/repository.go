// Package catalog provides persistence for catalog snapshots. A snapshot is
// loaded once, then frozen into an in-memory catalog before any encounter is
// resolved.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogrepomock github.com/KirkDiggler/rpg-encounters/internal/repositories/catalog Repository

import (
	"context"

	catalogdata "github.com/KirkDiggler/rpg-encounters/internal/catalog"
)

// Repository defines the interface for catalog snapshot persistence
type Repository interface {
	// Save replaces the stored snapshot with input.Data
	// Returns errors.InvalidArgument when data is missing
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the stored snapshot
	// Returns errors.NotFound if no snapshot has been saved
	// Returns errors.Internal for storage or decoding failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Data *catalogdata.Data
}

// SaveOutput reports how many entries were written per kind
type SaveOutput struct {
	Prototypes int
	Weapons    int
	Spells     int
}

// LoadInput defines the input for loading a snapshot
type LoadInput struct{}

// LoadOutput defines the output for loading a snapshot. Entries of each
// kind come back sorted by name.
type LoadOutput struct {
	Data *catalogdata.Data
}
