package game

import "fmt"

type LootKind int

const (
	LootPurse LootKind = iota + 1
	LootJewel
	LootStrongbox
)

func (k LootKind) String() string {
	switch k {
	case LootPurse:
		return "PURSE"
	case LootJewel:
		return "JEWEL"
	case LootStrongbox:
		return "STRONGBOX"
	default:
		return "UNKNOWN"
	}
}

const (
	JewelValue     = 500
	StrongboxValue = 1000
)

// PurseValues is the table a purse value is drawn from, uniformly.
var PurseValues = [...]int{250, 300, 350, 400, 450}

// Loot is a valued item placed in a car. Two loot items are equal when
// their kind and value match.
type Loot struct {
	Kind  LootKind
	Value int
}

func (l Loot) String() string {
	return fmt.Sprintf("(%s, %d)", l.Kind, l.Value)
}

// DrawPurse draws a single purse, consuming exactly one value from rng.
func DrawPurse(rng Source) Loot {
	return Loot{
		Kind:  LootPurse,
		Value: PurseValues[rng.IntN(len(PurseValues))],
	}
}

// GenerateCarLoot builds the inside loot for a car: all purses first, then
// jewels, then strongboxes. Only purses consume randomness.
func GenerateCarLoot(rng Source, purses, jewels, strongboxes int) ([]Loot, error) {
	counts := []struct {
		field string
		n     int
	}{
		{"purses", purses},
		{"jewels", jewels},
		{"strongboxes", strongboxes},
	}
	for _, c := range counts {
		if c.n < 0 {
			return nil, negativeCount(c.field, c.n)
		}
	}

	loot := make([]Loot, 0, purses+jewels+strongboxes)
	for i := 0; i < purses; i++ {
		loot = append(loot, DrawPurse(rng))
	}
	for i := 0; i < jewels; i++ {
		loot = append(loot, Loot{Kind: LootJewel, Value: JewelValue})
	}
	for i := 0; i < strongboxes; i++ {
		loot = append(loot, Loot{Kind: LootStrongbox, Value: StrongboxValue})
	}
	return loot, nil
}

func totalValue(loot []Loot) int {
	total := 0
	for _, l := range loot {
		total += l.Value
	}
	return total
}
