package encounters_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zombierpg/survivor-api/internal/catalog"
	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/events"
	"github.com/zombierpg/survivor-api/internal/orchestrators/encounters"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
	"github.com/zombierpg/survivor-api/internal/repositories/registry"
	"github.com/zombierpg/survivor-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	cleanup   func()
	orch      *encounters.Orchestrator
	states    gamestate.Repository
	published []events.HealthChange
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.published = nil

	var err error
	s.states, err = gamestate.NewRedis(&gamestate.RedisConfig{
		Client: client,
		Clock:  clock.NewFixed(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)

	registryRepo, err := registry.NewRedis(&registry.RedisConfig{Client: client})
	s.Require().NoError(err)

	bus := events.NewBus()
	bus.Subscribe(func(hc events.HealthChange) {
		s.published = append(s.published, hc)
	})

	s.orch, err = encounters.New(&encounters.Config{
		GameStateRepo: s.states,
		RegistryRepo:  registryRepo,
		Bus:           bus,
		IDGenerator:   idgen.NewSequential("event"),
		Clock:         clock.NewFixed(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)),
		Rand:          rand.New(rand.NewSource(1)),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) seed(mutate func(*survival.Character)) {
	state := testutils.NewTestState("char_1")
	if mutate != nil {
		mutate(state.Character)
	}
	_, err := s.states.Save(s.ctx, gamestate.SaveInput{State: state})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) trigger(eventID string) *encounters.TriggerOutput {
	out, err := s.orch.Trigger(s.ctx, encounters.TriggerInput{
		CharacterID: "char_1",
		EventID:     eventID,
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestListEventsIncludesCustom() {
	_, err := s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Title: "Refugio seguro",
		Type:  survival.EventPositive,
	})
	s.Require().NoError(err)

	out, err := s.orch.ListEvents(s.ctx, encounters.ListEventsInput{})

	s.NoError(err)
	s.Len(out.Events, len(catalog.Events())+1)
	s.Equal("Refugio seguro", out.Events[len(out.Events)-1].Title)
}

func (s *OrchestratorTestSuite) TestTriggerDamageClampsAtZero() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 2, Max: 11}
	})

	out := s.trigger("zombie_attack")

	s.Equal(0, out.Character.Health.Current)
	s.Equal(11, out.Character.Health.Max)
	s.Equal([]events.HealthChange{{Current: 0, Max: 11}}, s.published)
}

func (s *OrchestratorTestSuite) TestTriggerHealClampsAtMax() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 10, Max: 11}
	})

	out := s.trigger("heal_rest")

	s.Equal(11, out.Character.Health.Current)
}

func (s *OrchestratorTestSuite) TestTriggerMaxHealthAppliesFirst() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 11, Max: 11}
	})

	out := s.trigger("increase_max_health")

	// The max raise lands before the heal, so the extra point is kept.
	s.Equal(12, out.Character.Health.Max)
	s.Equal(12, out.Character.Health.Current)
}

func (s *OrchestratorTestSuite) TestTriggerGrantsItemsThroughMergeRules() {
	s.seed(nil)

	out := s.trigger("find_food")

	s.Equal([]string{"Lata de conserva", "Lata de conserva"}, out.GrantedItems)
	s.Require().Len(out.Character.Inventory, 1)
	s.Equal("lata_conserva", out.Character.Inventory[0].ID)
	s.Equal(2, out.Character.Inventory[0].Quantity)
}

func (s *OrchestratorTestSuite) TestTriggerFullBackpackStopsGrants() {
	s.seed(func(ch *survival.Character) {
		ch.InventoryCapacity = 1
		item := mustCatalogItem("pistola")
		ch.Inventory = []survival.Item{item}
	})

	out := s.trigger("find_medicine")

	s.Empty(out.GrantedItems)
	s.Len(out.Character.Inventory, 1)
}

func (s *OrchestratorTestSuite) TestTriggerRemovesRandomItem() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 11, Max: 11}
		ch.Inventory = []survival.Item{
			mustCatalogItem("pistola"),
			mustCatalogItem("linterna"),
			mustCatalogItem("mapa"),
		}
	})

	out := s.trigger("lose_supplies")

	s.Equal(10, out.Character.Health.Current)
	s.Len(out.Character.Inventory, 2)
	s.NotEmpty(out.RemovedItem)
	names := []string{}
	for _, it := range out.Character.Inventory {
		names = append(names, it.Name)
	}
	s.NotContains(names, out.RemovedItem)
}

func (s *OrchestratorTestSuite) TestTriggerRemoveRandomSkipsEmptyBackpack() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 11, Max: 11}
	})

	out := s.trigger("lose_supplies")

	s.Empty(out.RemovedItem)
	s.Equal(10, out.Character.Health.Current)
}

func (s *OrchestratorTestSuite) TestTriggerPersistsAndLogs() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 8, Max: 11}
	})

	s.trigger("heal_rest")

	got, err := s.states.Get(s.ctx, gamestate.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(10, got.State.Character.Health.Current)

	log, err := s.orch.EventLog(s.ctx, encounters.EventLogInput{})
	s.Require().NoError(err)
	s.Require().Len(log.Entries, 1)
	s.Contains(log.Entries[0], "Descanso Reparador")
	s.Contains(log.Entries[0], "salud 10/11")
}

func (s *OrchestratorTestSuite) TestTriggerNoHealthChangeNoPublish() {
	s.seed(nil)

	s.trigger("find_ammo")

	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestTriggerUnknownEvent() {
	s.seed(nil)

	_, err := s.orch.Trigger(s.ctx, encounters.TriggerInput{
		CharacterID: "char_1",
		EventID:     "meteorito",
	})

	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestTriggerCustomEvent() {
	s.seed(func(ch *survival.Character) {
		ch.Health = survival.Health{Current: 5, Max: 11}
	})

	created, err := s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Title:       "Refugio seguro",
		Description: "Una noche tranquila tras una puerta blindada.",
		Type:        survival.EventPositive,
		Health:      3,
	})
	s.Require().NoError(err)

	out := s.trigger(created.Event.ID)

	s.Equal(8, out.Character.Health.Current)
	s.Equal("Refugio seguro", out.Event.Title)
}

func (s *OrchestratorTestSuite) TestCreateCustomEventValidation() {
	_, err := s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Type: survival.EventPositive,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Title: "Cosa rara",
		Type:  "cosmic",
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Title:   "Botín imposible",
		Type:    survival.EventPositive,
		ItemIDs: []string{"katana"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateCustomEvent() {
	created, err := s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Title: "Refugio seguro",
		Type:  survival.EventPositive,
	})
	s.Require().NoError(err)

	out, err := s.orch.UpdateCustomEvent(s.ctx, encounters.UpdateCustomEventInput{
		ID:     created.Event.ID,
		Title:  "Refugio fortificado",
		Type:   survival.EventPositive,
		Health: 2,
	})

	s.Require().NoError(err)
	s.Equal("Refugio fortificado", out.Event.Title)
	s.Equal(2, out.Event.Effects.Health)

	list, err := s.orch.ListEvents(s.ctx, encounters.ListEventsInput{})
	s.Require().NoError(err)
	s.Equal("Refugio fortificado", list.Events[len(list.Events)-1].Title)
}

func (s *OrchestratorTestSuite) TestUpdateCustomEventNotFound() {
	_, err := s.orch.UpdateCustomEvent(s.ctx, encounters.UpdateCustomEventInput{
		ID:    "missing",
		Title: "Da igual",
		Type:  survival.EventNeutral,
	})

	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteCustomEvent() {
	created, err := s.orch.CreateCustomEvent(s.ctx, encounters.CreateCustomEventInput{
		Title: "Refugio seguro",
		Type:  survival.EventPositive,
	})
	s.Require().NoError(err)

	_, err = s.orch.DeleteCustomEvent(s.ctx, encounters.DeleteCustomEventInput{ID: created.Event.ID})
	s.NoError(err)

	_, err = s.orch.DeleteCustomEvent(s.ctx, encounters.DeleteCustomEventInput{ID: created.Event.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteCannotTouchPredefinedEvents() {
	_, err := s.orch.DeleteCustomEvent(s.ctx, encounters.DeleteCustomEventInput{ID: "zombie_attack"})

	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClearEventLog() {
	s.seed(nil)
	s.trigger("find_ammo")

	_, err := s.orch.ClearEventLog(s.ctx, encounters.ClearEventLogInput{})
	s.NoError(err)

	log, err := s.orch.EventLog(s.ctx, encounters.EventLogInput{})
	s.NoError(err)
	s.Empty(log.Entries)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func mustCatalogItem(id string) survival.Item {
	item, ok := catalog.Item(id)
	if !ok {
		panic("unknown catalog item " + id)
	}
	return item
}
