package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kingrea/restaurateur/internal/config"
	"github.com/kingrea/restaurateur/internal/restaurant"
)

func newTestEnv() *flowEnv {
	n := 0
	store := restaurant.NewStore(restaurant.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("o%d", n)
	}))
	return &flowEnv{store: store}
}

func seedBusiness(t *testing.T, env *flowEnv, withMenu bool) {
	t.Helper()
	env.store.AddBusiness(restaurant.NewBusiness("Cafe", "addr", "phone"))
	if !withMenu {
		return
	}
	b := restaurant.NewMenuBuilder("Day", 0, true)
	b.StartCuisine("Italian")
	_ = b.AddFood(restaurant.Food{Name: "Pizza", Price: 9.5})
	_ = b.AddFood(restaurant.Food{Name: "Pasta", Price: 7})
	if err := env.store.AddMenu("Cafe", b.Build()); err != nil {
		t.Fatalf("add menu: %v", err)
	}
}

// runFlow feeds answers until the flow finishes and returns every line.
func runFlow(t *testing.T, f flow, answers ...string) ([]outputLine, bool) {
	t.Helper()
	var all []outputLine
	for i, answer := range answers {
		if f.prompt() == "" {
			t.Fatalf("empty prompt before answer %d", i)
		}
		out, done := f.submit(answer)
		all = append(all, out...)
		if done {
			if i != len(answers)-1 {
				t.Fatalf("flow finished after answer %d of %d", i+1, len(answers))
			}
			return all, true
		}
	}
	return all, false
}

func hasLine(lines []outputLine, kind lineKind, text string) bool {
	for _, line := range lines {
		if line.kind == kind && strings.Contains(line.text, text) {
			return true
		}
	}
	return false
}

func TestCreateBusinessFlowReplacesExisting(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, true)
	out, done := runFlow(t, newCreateBusinessFlow(env), " Cafe ", "new addr", "999")
	if !done {
		t.Fatalf("flow should finish after phone")
	}
	if !hasLine(out, lineWarn, "Replacing existing business") {
		t.Fatalf("expected replacement warning, got %+v", out)
	}
	b, _ := env.store.GetBusiness("Cafe")
	if b.HasMenu() || b.Address != "new addr" {
		t.Fatalf("business not replaced: %+v", b)
	}
}

func TestAddMenuFlowUnknownBusiness(t *testing.T) {
	env := newTestEnv()
	out, done := runFlow(t, newAddMenuFlow(env), "Nowhere")
	if !done || !hasLine(out, lineError, "Business not found!") {
		t.Fatalf("out = %+v, done = %v", out, done)
	}
}

func TestAddMenuFlowDefaultsMalformedInput(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, false)
	out, done := runFlow(t, newAddMenuFlow(env),
		"Cafe", "Late", "12", "maybe",
		"Desserts", "Cake", "vegan", "sweet", "abc",
		"done", "done")
	if !done {
		t.Fatalf("flow did not finish")
	}
	for _, want := range []string{"Invalid veg flag, defaulting to veg", "Invalid food type, defaulting to Veg", "Invalid food category, defaulting to Appetizer", "Invalid price, defaulting to 0"} {
		if !hasLine(out, lineWarn, want) {
			t.Errorf("missing warning %q in %+v", want, out)
		}
	}
	b, _ := env.store.GetBusiness("Cafe")
	desserts, ok := b.Menu.Cuisine("Desserts")
	if !ok || len(desserts.Foods) != 1 {
		t.Fatalf("cuisine = %+v, %v", desserts, ok)
	}
	cake := desserts.Foods[0]
	if cake.Type != restaurant.Veg || cake.Category != restaurant.Appetizer || cake.Price != 0 {
		t.Fatalf("cake = %+v", cake)
	}
	if !b.Menu.IsVeg || b.Menu.Price != 12 {
		t.Fatalf("menu header = %+v", b.Menu)
	}
}

func TestAddOrderFlowRequiresMenu(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, false)
	out, done := runFlow(t, newAddOrderFlow(env), "Cafe")
	if !done || !hasLine(out, lineError, "Menu not found for business!") {
		t.Fatalf("out = %+v, done = %v", out, done)
	}
	if len(env.store.ShowOrders("Cafe")) != 0 {
		t.Fatalf("order recorded without menu")
	}
}

func TestAddOrderFlowRetriesAndFallsBack(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, true)
	f := newAddOrderFlow(env)
	out, done := runFlow(t, f,
		"Cafe",
		"Italian", "Sushi", "Pasta",
		"Italian", "done",
		"done",
		"Bo", "old", "", "", "cheque", "2024-12-24")
	if !done {
		t.Fatalf("flow did not finish")
	}
	if !hasLine(out, lineWarn, "Food not found in cuisine!") {
		t.Fatalf("missing food warning: %+v", out)
	}
	if !hasLine(out, lineWarn, "Invalid age, defaulting to 0") {
		t.Fatalf("missing age warning: %+v", out)
	}
	if !hasLine(out, lineWarn, "Invalid payment mode, defaulting to Card") {
		t.Fatalf("missing payment warning: %+v", out)
	}
	if !hasLine(out, lineSuccess, "Order added successfully! (ID o1, total 7.00)") {
		t.Fatalf("missing success line: %+v", out)
	}
	orders := env.store.ShowOrders("Cafe")
	if len(orders) != 1 {
		t.Fatalf("orders = %d", len(orders))
	}
	got := orders[0]
	if got.Date != "2024-12-24" || got.PaymentMode != restaurant.Card || got.Customer.Age != 0 || got.Price != 7 {
		t.Fatalf("order = %+v", got)
	}
}

func TestAddOrderFlowWithNoSelections(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, true)
	_, done := runFlow(t, newAddOrderFlow(env), "Cafe", "done", "Cy", "40", "a", "p", "cash", "d")
	if !done {
		t.Fatalf("flow did not finish")
	}
	orders := env.store.ShowOrders("Cafe")
	if len(orders) != 1 || len(orders[0].Foods) != 0 || orders[0].Price != 0 {
		t.Fatalf("orders = %+v", orders)
	}
}

func TestShowOrdersFlow(t *testing.T) {
	env := newTestEnv()
	out, _ := runFlow(t, newShowOrdersFlow(env), "Cafe")
	if !hasLine(out, lineError, "Business not found!") {
		t.Fatalf("out = %+v", out)
	}
	seedBusiness(t, env, true)
	out, _ = runFlow(t, newShowOrdersFlow(env), "Cafe")
	if !hasLine(out, lineInfo, "No orders found for business!") {
		t.Fatalf("out = %+v", out)
	}
}

func TestRemoveOrderFlowByIDThenDate(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, true)
	for _, date := range []string{"d1", "d1", "d2"} {
		if _, err := env.store.AddOrder("Cafe", restaurant.Order{Date: date}); err != nil {
			t.Fatal(err)
		}
	}

	out, done := runFlow(t, newRemoveOrderFlow(env), "Cafe", "o3")
	if !done || !hasLine(out, lineSuccess, "Removed 1 order") {
		t.Fatalf("remove by id: %+v", out)
	}
	out, _ = runFlow(t, newRemoveOrderFlow(env), "Cafe", "d1")
	if !hasLine(out, lineSuccess, "Removed 2 order(s) dated d1") {
		t.Fatalf("remove by date: %+v", out)
	}
	out, _ = runFlow(t, newRemoveOrderFlow(env), "Cafe", "d9")
	if !hasLine(out, lineWarn, `No order matched "d9"`) {
		t.Fatalf("remove unknown: %+v", out)
	}
	if n := len(env.store.ShowOrders("Cafe")); n != 0 {
		t.Fatalf("orders left = %d", n)
	}
}

func TestRemoveBusinessFlow(t *testing.T) {
	env := newTestEnv()
	seedBusiness(t, env, false)
	out, _ := runFlow(t, newRemoveBusinessFlow(env), "Cafe")
	if !hasLine(out, lineSuccess, "Business removed successfully!") {
		t.Fatalf("out = %+v", out)
	}
	out, _ = runFlow(t, newRemoveBusinessFlow(env), "Cafe")
	if !hasLine(out, lineError, "Business not found!") {
		t.Fatalf("out = %+v", out)
	}
}

func TestPaymentModeFlowPersists(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitDir(projectDir); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	env := newTestEnv()
	env.cfg = cfg

	out, done := runFlow(t, newPaymentModeFlow(env), "cheque")
	if !done || !hasLine(out, lineWarn, `Unknown payment mode "cheque", keeping Card`) {
		t.Fatalf("invalid mode: out = %+v, done = %v", out, done)
	}
	if cfg.DefaultPaymentMode() != restaurant.Card {
		t.Fatalf("invalid answer changed mode to %s", cfg.DefaultPaymentMode())
	}

	out, _ = runFlow(t, newPaymentModeFlow(env), " Wallet ")
	if !hasLine(out, lineSuccess, "Default payment mode set to Wallet") {
		t.Fatalf("out = %+v", out)
	}
	reloaded, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.DefaultPaymentMode() != restaurant.Wallet {
		t.Fatalf("reloaded mode = %s, want Wallet", reloaded.DefaultPaymentMode())
	}

	out, _ = runFlow(t, newPaymentModeFlow(env), "")
	if !hasLine(out, lineInfo, "Default payment mode unchanged (Wallet)") {
		t.Fatalf("blank answer: out = %+v", out)
	}
}
