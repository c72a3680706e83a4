package game

import (
	"fmt"
	"log"

	"github.com/OliverKris/colt-express/utils"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Generator builds trains from a template table. It holds no random state,
// so one Generator may serve concurrent calls.
type Generator struct {
	templates []Template
	logger    *log.Logger
}

type Option func(*Generator) error

// WithTemplates replaces the base game table.
func WithTemplates(templates []Template) Option {
	return func(g *Generator) error {
		if len(templates) == 0 {
			return badTemplate(0)
		}
		for _, t := range templates {
			if err := t.validate(); err != nil {
				return err
			}
		}
		g.templates = append([]Template{}, templates...)
		return nil
	}
}

// WithLogger logs every car as it is built.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{templates: BaseGameTemplates}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// GenerateTrain builds a base game train. A nil seed draws one from entropy.
func GenerateTrain(numPlayers int, seed *int64) (*Train, error) {
	g, err := NewGenerator()
	if err != nil {
		return nil, err
	}
	return g.Generate(numPlayers, seed)
}

func (g *Generator) Generate(numPlayers int, seed *int64) (*Train, error) {
	train, _, err := g.GenerateWithSeed(numPlayers, seed)
	return train, err
}

// GenerateWithSeed is Generate that also returns the seed it used, so a
// train built from entropy can be reproduced later.
func (g *Generator) GenerateWithSeed(numPlayers int, seed *int64) (*Train, int64, error) {
	if err := validatePlayers(numPlayers); err != nil {
		return nil, 0, err
	}

	var s int64
	if seed != nil {
		s = *seed
	} else {
		var err error
		if s, err = utils.NewSeed(); err != nil {
			return nil, 0, fmt.Errorf("seed generator: %w", err)
		}
	}

	train, err := g.GenerateFrom(NewSource(s), numPlayers)
	if err != nil {
		return nil, 0, err
	}
	return train, s, nil
}

// GenerateFrom builds a train drawing from rng. All templates are picked
// before any loot is drawn; the caboose takes the first pick and the
// locomotive, holding a single strongbox, is always appended last.
func (g *Generator) GenerateFrom(rng Source, numPlayers int) (*Train, error) {
	if err := validatePlayers(numPlayers); err != nil {
		return nil, err
	}

	picks := make([]Template, numPlayers)
	for i := range picks {
		picks[i] = g.templates[rng.IntN(len(g.templates))]
	}

	cars := make([]Car, 0, numPlayers+1)
	for i, t := range picks {
		kind := CarPassenger
		if i == 0 {
			kind = CarCaboose
		}
		loot, err := GenerateCarLoot(rng, t.Purses, t.Jewels, 0)
		if err != nil {
			return nil, fmt.Errorf("car %d: %w", i, err)
		}
		cars = append(cars, g.built(i, newCar(kind, loot)))
	}

	loot, err := GenerateCarLoot(rng, 0, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("locomotive: %w", err)
	}
	cars = append(cars, g.built(numPlayers, newCar(CarLocomotive, loot)))

	return NewTrain(cars), nil
}

func (g *Generator) built(i int, c Car) Car {
	if g.logger != nil {
		g.logger.Printf("car %d: %s (value %d)", i, c, c.LootValue())
	}
	return c
}

func validatePlayers(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return playerCountOutOfRange(n)
	}
	return nil
}
