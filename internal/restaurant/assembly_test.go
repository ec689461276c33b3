package restaurant

import (
	"errors"
	"testing"
)

func TestAssembleOrderEmptySelections(t *testing.T) {
	menu := italianMenu()
	order, err := AssembleOrder(&menu, nil, Customer{Name: "Ann", Age: 30}, Cash, "2024-05-01")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(order.Foods) != 0 {
		t.Fatalf("foods = %d, want 0", len(order.Foods))
	}
	if order.Price != 0.0 {
		t.Fatalf("price = %v, want 0", order.Price)
	}
	if order.Date != "2024-05-01" || order.Customer.Name != "Ann" || order.PaymentMode != Cash {
		t.Fatalf("order fields not carried over: %+v", order)
	}
	if order.ID != "" {
		t.Fatalf("assembled order should not carry an id yet, got %q", order.ID)
	}
}

func TestAssembleOrderSumsLinePrices(t *testing.T) {
	menu := italianMenu()
	selections := []Selection{
		{Cuisine: "Italian", Food: "Pizza"},
		{Cuisine: "Italian", Food: "Pasta"},
	}
	order, err := AssembleOrder(&menu, selections, Customer{}, Card, "d")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(order.Foods) != 2 {
		t.Fatalf("foods = %d, want 2", len(order.Foods))
	}
	if order.Price != 16.5 {
		t.Fatalf("price = %v, want 16.5", order.Price)
	}
	if order.Total() != order.Price {
		t.Fatalf("Total() = %v, Price = %v", order.Total(), order.Price)
	}
	for i, want := range []string{"Pizza", "Pasta"} {
		line := order.Foods[i]
		if line.Food.Name != want || line.Quantity != 1 || line.Price != line.Food.Price {
			t.Fatalf("line %d = %+v", i, line)
		}
	}
}

func TestAssembleOrderNoMenu(t *testing.T) {
	if _, err := AssembleOrder(nil, nil, Customer{}, Cash, "d"); !errors.Is(err, ErrNoMenu) {
		t.Fatalf("err = %v, want ErrNoMenu", err)
	}
}

func TestAssembleOrderReportsFailingSelection(t *testing.T) {
	menu := italianMenu()
	tests := []struct {
		name       string
		selections []Selection
		index      int
		want       error
	}{
		{"unknown cuisine", []Selection{{Cuisine: "Thai", Food: "Pad Thai"}}, 0, ErrCuisineNotFound},
		{"unknown food", []Selection{{Cuisine: "Italian", Food: "Pizza"}, {Cuisine: "Italian", Food: "Sushi"}}, 1, ErrFoodNotFound},
		{"food from other cuisine", []Selection{{Cuisine: "Indian", Food: "Pizza"}}, 0, ErrFoodNotFound},
		{"case sensitive cuisine", []Selection{{Cuisine: "italian", Food: "Pizza"}}, 0, ErrCuisineNotFound},
		{"untrimmed food", []Selection{{Cuisine: "Italian", Food: "Pizza "}}, 0, ErrFoodNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssembleOrder(&menu, tt.selections, Customer{}, Cash, "d")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var selErr *SelectionError
			if !errors.As(err, &selErr) {
				t.Fatalf("expected *SelectionError, got %T", err)
			}
			if selErr.Index != tt.index {
				t.Fatalf("index = %d, want %d", selErr.Index, tt.index)
			}
		})
	}
}

func TestAssemblerRetriesAfterMisses(t *testing.T) {
	menu := italianMenu()
	a, err := NewAssembler(&menu)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	if a.State() != AwaitingCuisine {
		t.Fatalf("initial state = %s", a.State())
	}

	if err := a.ChooseFood("Pizza"); !errors.Is(err, ErrNoCuisine) {
		t.Fatalf("food before cuisine err = %v", err)
	}
	if err := a.ChooseCuisine("Thai"); !errors.Is(err, ErrCuisineNotFound) {
		t.Fatalf("err = %v, want ErrCuisineNotFound", err)
	}
	if a.State() != AwaitingCuisine || len(a.Lines()) != 0 {
		t.Fatalf("miss changed state: %s, %d lines", a.State(), len(a.Lines()))
	}

	if err := a.ChooseCuisine("Italian"); err != nil {
		t.Fatalf("choose cuisine: %v", err)
	}
	if c, ok := a.Cuisine(); !ok || c.Name != "Italian" {
		t.Fatalf("chosen cuisine = %+v, %v", c, ok)
	}
	if err := a.ChooseFood("Samosa"); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("err = %v, want ErrFoodNotFound", err)
	}
	if a.State() != AwaitingFood {
		t.Fatalf("food miss should keep awaiting food, got %s", a.State())
	}
	if err := a.ChooseFood("Tiramisu"); err != nil {
		t.Fatalf("choose food: %v", err)
	}
	if a.State() != SelectionConfirmed {
		t.Fatalf("state = %s, want selection confirmed", a.State())
	}

	if err := a.ChooseCuisine("Indian"); err != nil {
		t.Fatalf("choose cuisine: %v", err)
	}
	a.Back()
	if a.State() != AwaitingCuisine {
		t.Fatalf("back should return to awaiting cuisine, got %s", a.State())
	}

	order := a.Finish(Customer{Name: "Bo"}, Wallet, "2024-02-02")
	if a.State() != AssemblyDone {
		t.Fatalf("state after finish = %s", a.State())
	}
	if len(order.Foods) != 1 || order.Price != 4.25 {
		t.Fatalf("order = %+v", order)
	}
	if err := a.ChooseCuisine("Italian"); !errors.Is(err, ErrAssemblyDone) {
		t.Fatalf("selection after done err = %v", err)
	}
}

func TestAssemblerSelectFailureAddsNothing(t *testing.T) {
	menu := italianMenu()
	a, _ := NewAssembler(&menu)
	if err := a.Select(Selection{Cuisine: "Mexican", Food: "Taco"}); !errors.Is(err, ErrCuisineNotFound) {
		t.Fatalf("err = %v", err)
	}
	if err := a.Select(Selection{Cuisine: "Italian", Food: "Taco"}); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("err = %v", err)
	}
	if a.State() != AwaitingCuisine {
		t.Fatalf("state = %s, want awaiting cuisine", a.State())
	}
	if len(a.Lines()) != 0 || a.Subtotal() != 0 {
		t.Fatalf("failed selections created lines: %+v", a.Lines())
	}
}

func TestAssemblerLinesAreSnapshots(t *testing.T) {
	menu := italianMenu()
	a, _ := NewAssembler(&menu)
	if err := a.Select(Selection{Cuisine: "Italian", Food: "Pizza"}); err != nil {
		t.Fatalf("select: %v", err)
	}
	menu.Cuisines["Italian"].Foods[0].Price = 100
	order := a.Finish(Customer{}, Cash, "d")
	if order.Foods[0].Food.Price != 9.5 || order.Price != 9.5 {
		t.Fatalf("line followed menu change: %+v", order.Foods[0])
	}
}
