package encounter_test

import (
	"github.com/KirkDiggler/rpg-encounters/internal/entities"
	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
	"github.com/KirkDiggler/rpg-encounters/internal/services/monster"
	monstermock "github.com/KirkDiggler/rpg-encounters/internal/services/monster/mock"
)

func (s *OrchestratorTestSuite) resolveParams(params map[string]string) *encounter.ResolveFromParametersOutput {
	svc := s.newOrchestrator(random.NewSeeded(11), s.tables, nil)
	out, err := svc.ResolveFromParameters(s.ctx, &encounter.ResolveFromParametersInput{Parameters: params})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out
}

func (s *OrchestratorTestSuite) TestParametersWithoutNameAreEmpty() {
	out := s.resolveParams(map[string]string{})
	s.NotNil(out.Monsters)
	s.Empty(out.Monsters)
	s.Equal([]string{"Name is required"}, out.Diagnostics)

	out = s.resolveParams(map[string]string{"Name": "  ", "Count": "3"})
	s.Empty(out.Monsters)
	s.NotEmpty(out.Diagnostics)
}

func (s *OrchestratorTestSuite) TestParametersCount() {
	out := s.resolveParams(map[string]string{"Name": "Goblin", "Count": "3"})
	s.Equal([]string{"Goblin", "Goblin", "Goblin"}, names(out.Monsters))
	s.Empty(out.Diagnostics)
}

func (s *OrchestratorTestSuite) TestParametersMalformedArmourFallsBack() {
	out := s.resolveParams(map[string]string{"Name": "Ghost", "Armour": "notanumber"})
	s.Require().Len(out.Monsters, 1)
	s.Equal("Ghost", out.Monsters[0].Name)
	s.Equal(0, out.Monsters[0].Armour)
	s.Len(out.Diagnostics, 1)
}

func (s *OrchestratorTestSuite) TestParametersEachFieldDefaultsAlone() {
	out := s.resolveParams(map[string]string{
		"Name":   "Orc",
		"Count":  "lots",
		"Shield": "maybe",
		"Armour": "2",
	})
	s.Require().Len(out.Monsters, 1)
	s.False(out.Monsters[0].HasShield)
	s.Equal(2, out.Monsters[0].Armour)
	s.Len(out.Diagnostics, 2)

	out = s.resolveParams(map[string]string{"Name": "Orc", "Count": "0"})
	s.Len(out.Monsters, 1)
}

func (s *OrchestratorTestSuite) TestParametersOverrides() {
	out := s.resolveParams(map[string]string{
		"name":        "Orc",
		"Shield":      "true",
		"Armour":      "2",
		"Weapons":     "Spear, Vorpal Blade",
		"Spells":      "Fireball,Wish",
		"SpecialRule": "Ambush",
	})
	s.Require().Len(out.Monsters, 1)
	orc := out.Monsters[0]

	s.True(orc.HasShield)
	s.Equal(2, orc.Armour)
	s.Require().Len(orc.Weapons, 1)
	s.Equal("Spear", orc.Weapons[0].Name)
	s.Require().Len(orc.Spells, 1)
	s.Equal("Fireball", orc.Spells[0].Name)
	s.Equal("Ambush", orc.SpecialRules[len(orc.SpecialRules)-1])
	s.Len(out.Diagnostics, 2)
}

func (s *OrchestratorTestSuite) TestParametersUnknownPrototype() {
	svc := s.newOrchestrator(random.NewSeeded(11), s.tables, nil)

	out, err := svc.ResolveFromParameters(s.ctx, &encounter.ResolveFromParametersInput{
		Parameters: map[string]string{"Name": "Beholder"},
	})
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestParametersMakeOneBuildGroupCall() {
	mockFactory := monstermock.NewMockFactory(s.ctrl)
	built := []*entities.Monster{{Name: "Goblin"}, {Name: "Goblin"}, {Name: "Goblin"}}
	mockFactory.EXPECT().
		BuildGroup(3, &monster.BuildInput{Prototype: "Goblin", Armour: 1, SpecialRule: "Sneaky"}).
		Return(built, nil).
		Times(1)

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		Tables:      s.tables,
		Factory:     mockFactory,
		Equipment:   s.catalog,
		Spells:      s.catalog,
		Random:      s.mockRandom,
		IDGenerator: idgen.NewSequential("encounter"),
	})
	s.Require().NoError(err)

	out, err := svc.ResolveFromParameters(s.ctx, &encounter.ResolveFromParametersInput{
		Parameters: map[string]string{"Name": "Goblin", "Count": "3", "Armour": "1", "SpecialRule": "Sneaky"},
	})
	s.Require().NoError(err)
	s.Equal(built, out.Monsters)
}

func (s *OrchestratorTestSuite) TestParametersKeepDefaultsWhenNothingResolves() {
	out := s.resolveParams(map[string]string{"Name": "Orc", "Weapons": "Vorpal Blade, Laser"})
	s.Require().Len(out.Monsters, 1)
	s.Require().Len(out.Monsters[0].Weapons, 1)
	s.Equal("Scimitar", out.Monsters[0].Weapons[0].Name)
	s.Equal([]string{"none of 2 weapons found, keeping Orc defaults"}, out.Diagnostics)

	out = s.resolveParams(map[string]string{"Name": "Necromancer", "Spells": "Wish"})
	s.Require().Len(out.Monsters, 1)
	s.Require().Len(out.Monsters[0].Spells, 1)
	s.Equal("Chill Touch", out.Monsters[0].Spells[0].Name)
	s.Len(out.Diagnostics, 1)
}

func (s *OrchestratorTestSuite) TestParametersCaseClashIsDeterministic() {
	for i := 0; i < 20; i++ {
		out := s.resolveParams(map[string]string{"name": "Orc", "Name": "Goblin"})
		s.Require().Len(out.Monsters, 1)
		s.Equal("Goblin", out.Monsters[0].Name)
		s.Equal([]string{`parameter "name" ignored, "Name" already set`}, out.Diagnostics)
	}

	out := s.resolveParams(map[string]string{"NAME": "Orc", "name": "Goblin"})
	s.Require().Len(out.Monsters, 1)
	s.Equal("Orc", out.Monsters[0].Name)
	s.Len(out.Diagnostics, 1)
}
