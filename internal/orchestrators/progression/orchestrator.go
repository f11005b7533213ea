// Package progression implements post-creation leveling. A level-up pairs a
// level increment with exactly one fully-specified benefit; validation runs
// before any mutation so a rejected level-up leaves the character untouched.
package progression

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/zombierpg/survivor-api/internal/catalog"
	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/events"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
	"github.com/zombierpg/survivor-api/internal/rules"
)

// maxHealthGain is the max-health benefit's bonus, applied to current health
// as well.
const maxHealthGain = 2

// Orchestrator drives level-ups.
type Orchestrator struct {
	stateRepo gamestate.Repository
	bus       *events.Bus
	idGen     idgen.Generator
	clock     clock.Clock
}

// Config contains the dependencies for the progression orchestrator.
type Config struct {
	GameStateRepo gamestate.Repository
	Bus           *events.Bus
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.GameStateRepo == nil {
		vb.RequiredField("GameStateRepo")
	}
	if cfg.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// New creates a progression orchestrator from the config.
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = idgen.NewUUID("skill")
	}

	return &Orchestrator{
		stateRepo: cfg.GameStateRepo,
		bus:       cfg.Bus,
		idGen:     g,
		clock:     c,
	}, nil
}

// LevelUp applies one benefit and increments the level atomically: either
// both happen and the record is persisted, or neither does.
func (o *Orchestrator) LevelUp(ctx context.Context, input LevelUpInput) (*LevelUpOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	out, err := o.stateRepo.Get(ctx, gamestate.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	ch := out.State.Character

	// Validate the whole chosen path first. apply runs only when the input
	// is complete, so a half-specified benefit never mutates anything.
	apply, healthChanged, err := o.planBenefit(ch, input)
	if err != nil {
		return nil, err
	}

	apply(ch)
	ch.Level++
	ch.LastUpdated = o.clock.Now().UTC().Format(time.RFC3339)

	if _, err := o.stateRepo.Save(ctx, gamestate.SaveInput{State: out.State}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist level-up")
	}

	if healthChanged {
		o.bus.Publish(events.HealthChange{
			Current: ch.Health.Current,
			Max:     ch.Health.Max,
		})
	}

	slog.DebugContext(ctx, "leveled up character",
		"character_id", ch.ID,
		"level", ch.Level,
		"benefit", string(input.Benefit))

	return &LevelUpOutput{Character: ch}, nil
}

// planBenefit validates the input for the chosen benefit and returns the
// mutation to run, plus whether it touches health.
func (o *Orchestrator) planBenefit(
	ch *survival.Character,
	input LevelUpInput,
) (func(*survival.Character), bool, error) {
	switch input.Benefit {
	case BenefitMaxHealth:
		return func(c *survival.Character) {
			c.Health.Max += maxHealthGain
			c.Health.Current += maxHealthGain
		}, true, nil

	case BenefitStat:
		if _, ok := catalog.Stat(input.Stat); !ok {
			return nil, false, errors.InvalidArgumentf("unknown stat %q", input.Stat)
		}
		// Raising resistance past the health threshold grants the same
		// marginal hit point the creation formula would. The two paths
		// must agree for equal stat deltas.
		grantsHealth := input.Stat == survival.StatResistance &&
			ch.Stats.Resistance+1 > rules.HealthResistanceThreshold
		return func(c *survival.Character) {
			c.Stats.Set(input.Stat, c.Stats.Get(input.Stat)+1)
			if grantsHealth {
				c.Health.Max++
				c.Health.Current++
			}
		}, grantsHealth, nil

	case BenefitNewSkill:
		return o.planNewSkill(ch, input)

	case BenefitImproveSkill:
		return planImproveSkill(ch, input)

	case "":
		return nil, false, errors.InvalidArgument("a benefit must be selected")
	default:
		return nil, false, errors.InvalidArgumentf("unknown benefit %q", input.Benefit)
	}
}

func (o *Orchestrator) planNewSkill(
	ch *survival.Character,
	input LevelUpInput,
) (func(*survival.Character), bool, error) {
	if input.SkillID != "" {
		if _, ok := catalog.SpecialSkill(input.SkillID); !ok {
			return nil, false, errors.InvalidArgumentf("unknown special skill %q", input.SkillID)
		}
		if ch.HasSpecialSkill(input.SkillID) {
			return nil, false, errors.FailedPreconditionf(
				"special skill %q is already owned", input.SkillID)
		}
		id := input.SkillID
		return func(c *survival.Character) {
			c.SpecialSkillIDs = append(c.SpecialSkillIDs, id)
		}, false, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("customName", input.CustomName, vb)
	errors.ValidateRequired("customDescription", input.CustomDescription, vb)
	if err := vb.Build(); err != nil {
		return nil, false, err
	}

	skill := survival.CustomSkill{
		ID:          o.idGen.Generate(),
		Name:        strings.TrimSpace(input.CustomName),
		Description: strings.TrimSpace(input.CustomDescription),
	}
	return func(c *survival.Character) {
		c.CustomSkills = append(c.CustomSkills, skill)
		c.SpecialSkillIDs = append(c.SpecialSkillIDs, skill.ID)
	}, false, nil
}

func planImproveSkill(
	ch *survival.Character,
	input LevelUpInput,
) (func(*survival.Character), bool, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("skillId", input.SkillID, vb)
	errors.ValidateRequired("effect", input.Effect, vb)
	if err := vb.Build(); err != nil {
		return nil, false, err
	}

	if ch.IsSkillImproved(input.SkillID) {
		return nil, false, errors.FailedPreconditionf(
			"skill %q was already improved", input.SkillID)
	}

	effect := strings.TrimSpace(input.Effect)

	if i := ch.FindCustomSkill(input.SkillID); i >= 0 {
		return func(c *survival.Character) {
			c.CustomSkills[i].Improved = true
			c.CustomSkills[i].ImprovedEffect = effect
		}, false, nil
	}

	if !ch.HasSpecialSkill(input.SkillID) {
		return nil, false, errors.FailedPreconditionf(
			"skill %q is not owned by this character", input.SkillID)
	}

	id := input.SkillID
	return func(c *survival.Character) {
		c.ImprovedSkills = append(c.ImprovedSkills, survival.ImprovedSkill{
			SkillID: id,
			Effect:  effect,
		})
	}, false, nil
}
