// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-encounters/internal/tables"
)

// TableBuilder provides a fluent interface for building roll tables in tests.
// Build does not validate, so tests can construct tables the loader rejects.
type TableBuilder struct {
	table *tables.Table
}

// NewTableBuilder starts a table for t rolled on a die with the given sides
func NewTableBuilder(t tables.EncounterType, die int) *TableBuilder {
	return &TableBuilder{
		table: &tables.Table{Type: t, Die: die},
	}
}

// WithBucket adds a bucket covering low..high that builds the instructions
func (b *TableBuilder) WithBucket(low, high int, instructions ...tables.Instruction) *TableBuilder {
	b.table.Buckets = append(b.table.Buckets, tables.Bucket{
		Rolls:        tables.RollRange{Low: low, High: high},
		Instructions: instructions,
	})
	return b
}

// WithMeta adds a meta bucket covering low..high
func (b *TableBuilder) WithMeta(low, high, draws, reroll int) *TableBuilder {
	b.table.Buckets = append(b.table.Buckets, tables.Bucket{
		Rolls: tables.RollRange{Low: low, High: high},
		Meta:  &tables.Meta{Draws: draws, Reroll: reroll},
	})
	return b
}

// Build returns the table
func (b *TableBuilder) Build() *tables.Table {
	return b.table
}

// InstructionBuilder provides a fluent interface for build instructions
type InstructionBuilder struct {
	instruction tables.Instruction
}

// NewInstruction starts an instruction for count monsters of prototype
func NewInstruction(count tables.Count, prototype string) *InstructionBuilder {
	return &InstructionBuilder{
		instruction: tables.Instruction{Count: count, Prototype: prototype},
	}
}

// WithWeapons sets the weapon override names
func (b *InstructionBuilder) WithWeapons(names ...string) *InstructionBuilder {
	b.instruction.Weapons = names
	return b
}

// WithArmour sets the armour value
func (b *InstructionBuilder) WithArmour(armour int) *InstructionBuilder {
	b.instruction.Armour = armour
	return b
}

// WithShield sets the shield flag
func (b *InstructionBuilder) WithShield() *InstructionBuilder {
	b.instruction.Shield = true
	return b
}

// WithSpells sets the spell override names
func (b *InstructionBuilder) WithSpells(names ...string) *InstructionBuilder {
	b.instruction.Spells = names
	return b
}

// WithSpellCounts asks for a random loadout
func (b *InstructionBuilder) WithSpellCounts(touch, ranged, support int) *InstructionBuilder {
	b.instruction.SpellCounts = &tables.SpellCounts{Touch: touch, Ranged: ranged, Support: support}
	return b
}

// WithSpecialRule sets the rule appended to every instance
func (b *InstructionBuilder) WithSpecialRule(rule string) *InstructionBuilder {
	b.instruction.SpecialRule = rule
	return b
}

// Build returns the instruction
func (b *InstructionBuilder) Build() tables.Instruction {
	return b.instruction
}
