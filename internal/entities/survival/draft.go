package survival

// Stage identifies a step of the character-creation pipeline. Stages are
// strictly ordered; the builder orchestrator enforces the entry gates.
type Stage string

// Creation stages in pipeline order.
const (
	StageBasics         Stage = "basics"
	StageStats          Stage = "stats"
	StagePersonalSkills Stage = "personal_skills"
	StageSpecialSkills  Stage = "special_skills"
	StageHealthReview   Stage = "health_review"
	StageInventory      Stage = "inventory"
	StageComplete       Stage = "complete"
)

var stageOrder = []Stage{
	StageBasics,
	StageStats,
	StagePersonalSkills,
	StageSpecialSkills,
	StageHealthReview,
	StageInventory,
	StageComplete,
}

// Index returns the stage's position in the pipeline, or -1 for an unknown
// stage.
func (s Stage) Index() int {
	for i, stage := range stageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage, or the stage itself when already at the
// end of the pipeline.
func (s Stage) Next() Stage {
	i := s.Index()
	if i < 0 || i >= len(stageOrder)-1 {
		return s
	}
	return stageOrder[i+1]
}

// Prev returns the preceding stage, or the stage itself at the start.
func (s Stage) Prev() Stage {
	i := s.Index()
	if i <= 0 {
		return s
	}
	return stageOrder[i-1]
}

// Draft is the single in-progress character during creation. It is persisted
// transiently so a reload resumes where the player left off, and destroyed on
// finalize or reset. The derived fields (PointsLeft, TotalStatPoints,
// PersonalSkillPointsLeft, Health) are recomputed by the builder after every
// mutation; they are stored so the persisted draft is self-describing.
type Draft struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Background string `json:"background"`
	Appearance string `json:"appearance"`
	ImageData  string `json:"imageData,omitempty"`

	Stats                    Stats           `json:"stats"`
	PersonalSkills           []PersonalSkill `json:"personalSkills"`
	SelectedPersonalSkillIDs []string        `json:"selectedPersonalSkillIds"`
	SpecialSkillIDs          []string        `json:"skills"`
	LoadoutIDs               []string        `json:"inventory"`

	PointsLeft              int `json:"pointsLeft"`
	TotalStatPoints         int `json:"totalStatPoints"`
	PersonalSkillPointsLeft int `json:"personalSkillPointsLeft"`
	Health                  int `json:"health"`

	Stage     Stage  `json:"stage"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// HasSelectedPersonalSkill reports whether the skill id is currently picked.
func (d *Draft) HasSelectedPersonalSkill(skillID string) bool {
	for _, id := range d.SelectedPersonalSkillIDs {
		if id == skillID {
			return true
		}
	}
	return false
}

// FindPersonalSkill returns the index of the allocated personal skill with
// the given id, or -1.
func (d *Draft) FindPersonalSkill(skillID string) int {
	for i := range d.PersonalSkills {
		if d.PersonalSkills[i].ID == skillID {
			return i
		}
	}
	return -1
}

// HasSpecialSkill reports whether the special skill is currently selected.
func (d *Draft) HasSpecialSkill(skillID string) bool {
	for _, id := range d.SpecialSkillIDs {
		if id == skillID {
			return true
		}
	}
	return false
}

// HasLoadoutItem reports whether the catalog item is in the starting loadout.
func (d *Draft) HasLoadoutItem(itemID string) bool {
	for _, id := range d.LoadoutIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
