package survival

// Stats holds the five base attributes. Values are 1-5 at creation and grow
// without bound through leveling.
type Stats struct {
	Strength     int `json:"fuerza"`
	Agility      int `json:"agilidad"`
	Intelligence int `json:"inteligencia"`
	Resistance   int `json:"resistencia"`
	Charisma     int `json:"carisma"`
}

// Get returns the value of the given stat.
func (s *Stats) Get(id StatID) int {
	switch id {
	case StatStrength:
		return s.Strength
	case StatAgility:
		return s.Agility
	case StatIntelligence:
		return s.Intelligence
	case StatResistance:
		return s.Resistance
	case StatCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// Set assigns the value of the given stat. Unknown ids are ignored.
func (s *Stats) Set(id StatID, value int) {
	switch id {
	case StatStrength:
		s.Strength = value
	case StatAgility:
		s.Agility = value
	case StatIntelligence:
		s.Intelligence = value
	case StatResistance:
		s.Resistance = value
	case StatCharisma:
		s.Charisma = value
	}
}

// Total returns the sum of all five stats.
func (s *Stats) Total() int {
	return s.Strength + s.Agility + s.Intelligence + s.Resistance + s.Charisma
}

// PersonalSkill is a point-buy skill chosen during creation.
type PersonalSkill struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// CustomSkill is a special skill authored by the player during a level-up.
type CustomSkill struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Improved       bool   `json:"improved,omitempty"`
	ImprovedEffect string `json:"improvedEffect,omitempty"`
}

// ImprovedSkill records an improvement applied to a predefined special skill.
type ImprovedSkill struct {
	SkillID string `json:"skillId"`
	Effect  string `json:"effect"`
}

// Health tracks current and maximum hit points. 0 <= Current <= Max.
type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Character is a finalized, persisted survivor. A character is exclusively
// owned by its save slot; no two slots share an id.
type Character struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Age               int             `json:"age"`
	Background        string          `json:"background"`
	Appearance        string          `json:"appearance"`
	ImageData         string          `json:"imageData,omitempty"`
	Level             int             `json:"level"`
	Stats             Stats           `json:"stats"`
	PersonalSkills    []PersonalSkill `json:"personalSkills"`
	SpecialSkillIDs   []string        `json:"specialSkills"`
	CustomSkills      []CustomSkill   `json:"customSkills,omitempty"`
	ImprovedSkills    []ImprovedSkill `json:"improvedSkills,omitempty"`
	Health            Health          `json:"health"`
	Inventory         []Item          `json:"inventory"`
	InventoryCapacity int             `json:"inventoryCapacity"`
	CreatedAt         string          `json:"createdAt"`
	LastUpdated       string          `json:"lastUpdated"`
}

// HasSpecialSkill reports whether the character owns the given special skill,
// predefined or custom.
func (c *Character) HasSpecialSkill(skillID string) bool {
	for _, id := range c.SpecialSkillIDs {
		if id == skillID {
			return true
		}
	}
	return false
}

// FindCustomSkill returns the index of the custom skill with the given id,
// or -1 if the character has no such skill.
func (c *Character) FindCustomSkill(skillID string) int {
	for i := range c.CustomSkills {
		if c.CustomSkills[i].ID == skillID {
			return i
		}
	}
	return -1
}

// IsSkillImproved reports whether the skill was already improved, checking
// both the custom skills and the improvement registry. A skill may be
// improved at most once.
func (c *Character) IsSkillImproved(skillID string) bool {
	if i := c.FindCustomSkill(skillID); i >= 0 && c.CustomSkills[i].Improved {
		return true
	}
	for _, imp := range c.ImprovedSkills {
		if imp.SkillID == skillID {
			return true
		}
	}
	return false
}

// FindItemIndex returns the index of the first inventory stack with the
// given item id, or -1.
func (c *Character) FindItemIndex(itemID string) int {
	for i := range c.Inventory {
		if c.Inventory[i].ID == itemID {
			return i
		}
	}
	return -1
}

// InventoryWeight returns the combined weight of every stack carried.
func (c *Character) InventoryWeight() float64 {
	var total float64
	for i := range c.Inventory {
		total += c.Inventory[i].TotalWeight()
	}
	return total
}

// GameState is the persisted record for one save slot.
type GameState struct {
	Character   *Character `json:"character"`
	GameVersion string     `json:"gameVersion"`
	SaveDate    string     `json:"saveDate"`
}

// Summary is the lightweight projection shown on the save-slot dashboard.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Health      Health `json:"health"`
	CreatedAt   string `json:"createdAt"`
	LastUpdated string `json:"lastUpdated"`
	ImageData   string `json:"imageData,omitempty"`
}
