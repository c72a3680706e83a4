package game

// Template sets the loot composition of one caboose or passenger car.
type Template struct {
	Purses int
	Jewels int
}

// BaseGameTemplates is the car table of the base game. Order matters: it is
// indexed by the random source.
var BaseGameTemplates = []Template{
	{Purses: 3},
	{Purses: 4, Jewels: 1},
	{Purses: 3, Jewels: 1},
	{Purses: 1},
	{Purses: 1, Jewels: 1},
	{Purses: 0, Jewels: 3},
}

// ParseTemplate reads a table entry written as [purses] or [purses, jewels].
// Any other length or a negative entry is rejected.
func ParseTemplate(entry []int) (Template, error) {
	if len(entry) < 1 || len(entry) > 2 {
		return Template{}, badTemplate(len(entry))
	}
	for _, n := range entry {
		if n < 0 {
			return Template{}, badTemplate(n)
		}
	}
	t := Template{Purses: entry[0]}
	if len(entry) == 2 {
		t.Jewels = entry[1]
	}
	return t, nil
}

// ParseTemplates parses a whole table. An empty table is rejected since
// nothing could be sampled from it.
func ParseTemplates(entries [][]int) ([]Template, error) {
	if len(entries) == 0 {
		return nil, badTemplate(0)
	}
	out := make([]Template, 0, len(entries))
	for _, e := range entries {
		t, err := ParseTemplate(e)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (t Template) validate() error {
	if t.Purses < 0 {
		return negativeCount("purses", t.Purses)
	}
	if t.Jewels < 0 {
		return negativeCount("jewels", t.Jewels)
	}
	return nil
}
