package game

import (
	"fmt"
	"strings"
)

type CarKind int

const (
	CarLocomotive CarKind = iota + 1
	CarPassenger
	CarCaboose
)

func (k CarKind) String() string {
	switch k {
	case CarLocomotive:
		return "LOCOMOTIVE"
	case CarPassenger:
		return "PASSENGER"
	case CarCaboose:
		return "CABOOSE"
	default:
		return "UNKNOWN"
	}
}

// Car is one unit of the train. Roof loot, bandits and the marshal are not
// placed at generation time; they start empty so gameplay code can fill
// them in later.
type Car struct {
	Kind          CarKind
	LootInside    []Loot
	LootRoof      []Loot
	BanditsInside []string
	BanditsRoof   []string
	HasMarshal    bool
}

func newCar(kind CarKind, inside []Loot) Car {
	return Car{
		Kind:          kind,
		LootInside:    inside,
		LootRoof:      []Loot{},
		BanditsInside: []string{},
		BanditsRoof:   []string{},
	}
}

// LootValue sums the value of every item in the car, inside and on the roof.
func (c Car) LootValue() int {
	return totalValue(c.LootInside) + totalValue(c.LootRoof)
}

func (c Car) String() string {
	items := make([]string, len(c.LootInside))
	for i, l := range c.LootInside {
		items[i] = l.String()
	}
	return fmt.Sprintf("Car(%s, Inside: [%s])", c.Kind, strings.Join(items, ", "))
}

func (c Car) clone() Car {
	out := c
	out.LootInside = append([]Loot{}, c.LootInside...)
	out.LootRoof = append([]Loot{}, c.LootRoof...)
	out.BanditsInside = append([]string{}, c.BanditsInside...)
	out.BanditsRoof = append([]string{}, c.BanditsRoof...)
	return out
}
