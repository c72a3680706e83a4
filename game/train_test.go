package game

import "testing"

func TestCarString(t *testing.T) {
	car := newCar(CarPassenger, []Loot{{Kind: LootPurse, Value: 300}, {Kind: LootJewel, Value: 500}})
	want := "Car(PASSENGER, Inside: [(PURSE, 300), (JEWEL, 500)])"
	if got := car.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := car.LootValue(); got != 800 {
		t.Fatalf("LootValue() = %d, want 800", got)
	}
}

func TestCarKindString(t *testing.T) {
	tcs := map[CarKind]string{
		CarLocomotive: "LOCOMOTIVE",
		CarPassenger:  "PASSENGER",
		CarCaboose:    "CABOOSE",
		CarKind(0):    "UNKNOWN",
	}
	for kind, want := range tcs {
		if got := kind.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestTrainString(t *testing.T) {
	train := NewTrain([]Car{
		newCar(CarCaboose, []Loot{}),
		newCar(CarLocomotive, []Loot{{Kind: LootStrongbox, Value: 1000}}),
	})
	want := "Train with 2 cars: \n Car(CABOOSE, Inside: [])\n Car(LOCOMOTIVE, Inside: [(STRONGBOX, 1000)])"
	if got := train.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestTrainAccessorsReturnCopies(t *testing.T) {
	cars := []Car{
		newCar(CarCaboose, []Loot{{Kind: LootPurse, Value: 250}}),
		newCar(CarLocomotive, []Loot{{Kind: LootStrongbox, Value: 1000}}),
	}
	train := NewTrain(cars)

	cars[0].LootInside[0].Value = 1
	if got := train.Caboose().LootInside[0].Value; got != 250 {
		t.Fatalf("NewTrain kept caller slice: value %d", got)
	}

	out := train.Cars()
	out[0].LootInside[0].Value = 2
	out[0].BanditsInside = append(out[0].BanditsInside, "Belle")
	if got := train.Car(0); got.LootInside[0].Value != 250 || len(got.BanditsInside) != 0 {
		t.Fatalf("Cars() exposed internal state: %+v", got)
	}

	loco := train.Locomotive()
	loco.HasMarshal = true
	if train.Locomotive().HasMarshal {
		t.Fatal("Locomotive() exposed internal state")
	}
	if got := train.TotalValue(); got != 1250 {
		t.Fatalf("TotalValue() = %d, want 1250", got)
	}
}
