package equipment

import "fmt"

// Item is an acquirable item. Items are value data; only Equipped changes
// once an instance is owned.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Cost        int      `json:"cost"`
	Effects     []Effect `json:"effects"`
	Consumable  bool     `json:"consumable"`
	Equipped    bool     `json:"equipped,omitempty"`
}

// Copy returns an independent instance of the item
func (i *Item) Copy() *Item {
	if i == nil {
		return nil
	}

	c := *i
	c.Effects = make([]Effect, len(i.Effects))
	copy(c.Effects, i.Effects)
	return &c
}

// Bonus sums the values of every effect of the given kind
func (i *Item) Bonus(kind EffectKind) int {
	total := 0
	for _, e := range i.Effects {
		if e.Kind == kind {
			total += e.Value
		}
	}
	return total
}

// Label is the emoji and name, e.g. "🧪 Health Potion"
func (i *Item) Label() string {
	return fmt.Sprintf("%s %s", i.Emoji, i.Name)
}

func (i *Item) String() string {
	return fmt.Sprintf("%s (%dg)", i.Label(), i.Cost)
}
