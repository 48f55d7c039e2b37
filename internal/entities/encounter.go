package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeEncounter is the rpg-toolkit entity type of a resolved encounter
const EntityTypeEncounter = "encounter"

// Encounter is the result of one table resolution
type Encounter struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Roll     int        `json:"roll"`
	Monsters []*Monster `json:"monsters"`
}

// GetID returns the encounter id
func (e *Encounter) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *Encounter) GetType() string {
	return EntityTypeEncounter
}

var _ core.Entity = (*Encounter)(nil)
