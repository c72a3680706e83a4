package game

import (
	"fmt"
	"strings"
)

// Train is the ordered sequence of cars from one generation, caboose first
// and locomotive last. It has no mutation API; accessors hand out copies.
type Train struct {
	cars []Car
}

// NewTrain builds a train from cars in order.
func NewTrain(cars []Car) *Train {
	t := &Train{cars: make([]Car, len(cars))}
	for i, c := range cars {
		t.cars[i] = c.clone()
	}
	return t
}

func (t *Train) Len() int {
	return len(t.cars)
}

// Cars returns a copy of every car in order.
func (t *Train) Cars() []Car {
	out := make([]Car, len(t.cars))
	for i, c := range t.cars {
		out[i] = c.clone()
	}
	return out
}

// Car returns a copy of the car at index i. It panics if i is out of range.
func (t *Train) Car(i int) Car {
	return t.cars[i].clone()
}

func (t *Train) Caboose() Car {
	return t.Car(0)
}

func (t *Train) Locomotive() Car {
	return t.Car(len(t.cars) - 1)
}

// TotalValue sums the loot value of every car.
func (t *Train) TotalValue() int {
	total := 0
	for _, c := range t.cars {
		total += c.LootValue()
	}
	return total
}

func (t *Train) String() string {
	lines := make([]string, len(t.cars))
	for i, c := range t.cars {
		lines[i] = c.String()
	}
	return fmt.Sprintf("Train with %d cars: \n %s", len(t.cars), strings.Join(lines, "\n "))
}
