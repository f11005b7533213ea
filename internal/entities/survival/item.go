package survival

// Item is a single inventory entry. Predefined items carry their catalog id;
// user-created items get a generated one. Quantity is always within
// [1, MaxStack]; non-stackable items always have Quantity 1.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	Stackable   bool     `json:"stackable"`
	Quantity    int      `json:"quantity"`
	MaxStack    int      `json:"maxStack"`
	Weight      float64  `json:"weight"`
	Image       string   `json:"image"`
	Usable      bool     `json:"usable"`
	Consumable  bool     `json:"consumable"`

	AmmoType      AmmoType `json:"ammoType,omitempty"`
	HealthRestore int      `json:"healthRestore,omitempty"`
	Damage        int      `json:"damage,omitempty"`
}

// TotalWeight returns the weight of the whole stack.
func (i *Item) TotalWeight() float64 {
	return i.Weight * float64(i.Quantity)
}

// CanStackWith reports whether an incoming stack of the same catalog item
// fits into this one without exceeding MaxStack.
func (i *Item) CanStackWith(incoming *Item) bool {
	if !i.Stackable || i.ID != incoming.ID {
		return false
	}
	return i.Quantity+incoming.Quantity <= i.MaxStack
}
