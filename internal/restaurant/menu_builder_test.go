package restaurant

import (
	"errors"
	"reflect"
	"testing"
)

func TestMenuBuilderCollectsCuisines(t *testing.T) {
	b := NewMenuBuilder("All Day", 15, false)
	if err := b.AddFood(Food{Name: "Orphan"}); !errors.Is(err, ErrNoCuisine) {
		t.Fatalf("AddFood without cuisine err = %v", err)
	}
	b.StartCuisine("Thai")
	if !b.InCuisine() || b.CurrentCuisine() != "Thai" {
		t.Fatalf("expected open Thai cuisine")
	}
	_ = b.AddFood(Food{Name: "Pad Thai", Price: 8})
	b.EndCuisine()
	if b.InCuisine() {
		t.Fatalf("cuisine still open after EndCuisine")
	}
	b.StartCuisine("Empty")
	menu := b.Build()

	if got := menu.CuisineNames(); !reflect.DeepEqual(got, []string{"Empty", "Thai"}) {
		t.Fatalf("cuisine names = %v", got)
	}
	if menu.Name != "All Day" || menu.Price != 15 || menu.IsVeg {
		t.Fatalf("menu header = %+v", menu)
	}
	thai, _ := menu.Cuisine("Thai")
	if _, ok := thai.Food("Pad Thai"); !ok {
		t.Fatalf("Pad Thai missing from %+v", thai)
	}
}

func TestMenuBuilderDuplicateCuisineReplaces(t *testing.T) {
	b := NewMenuBuilder("M", 0, true)
	b.StartCuisine("Thai")
	_ = b.AddFood(Food{Name: "Old"})
	b.StartCuisine("Thai")
	_ = b.AddFood(Food{Name: "New"})
	menu := b.Build()
	if len(menu.Cuisines) != 1 {
		t.Fatalf("cuisines = %d, want 1", len(menu.Cuisines))
	}
	thai, _ := menu.Cuisine("Thai")
	if len(thai.Foods) != 1 || thai.Foods[0].Name != "New" {
		t.Fatalf("thai foods = %+v, want only New", thai.Foods)
	}
}
