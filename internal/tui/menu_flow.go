package tui

import (
	"strings"

	"github.com/kingrea/restaurateur/internal/restaurant"
)

type menuStep int

const (
	menuStepBusiness menuStep = iota
	menuStepName
	menuStepPrice
	menuStepVeg
	menuStepCuisine
	menuStepFoodName
	menuStepFoodType
	menuStepFoodCategory
	menuStepFoodPrice
)

// addMenuFlow collects a whole menu for an existing business and replaces
// its current one. Malformed numbers and variants fall back with a warning.
type addMenuFlow struct {
	env      *flowEnv
	step     menuStep
	business string
	menuName string
	price    float64
	builder  *restaurant.MenuBuilder
	food     restaurant.Food
}

func newAddMenuFlow(env *flowEnv) *addMenuFlow {
	return &addMenuFlow{env: env}
}

func (f *addMenuFlow) title() string { return "Add a menu to an existing business" }

func (f *addMenuFlow) prompt() string {
	switch f.step {
	case menuStepBusiness:
		return "Enter business name:"
	case menuStepName:
		return "Enter menu name:"
	case menuStepPrice:
		return "Enter menu price:"
	case menuStepVeg:
		return "Is the menu veg? (y/n):"
	case menuStepCuisine:
		return "Enter cuisine name (or 'done' to finish):"
	case menuStepFoodName:
		if !f.builder.InCuisine() {
			return "Enter food name (or 'done' to finish):"
		}
		return "Enter food name for " + f.builder.CurrentCuisine() + " (or 'done' to finish):"
	case menuStepFoodType:
		return "Enter food type (veg/nonveg):"
	case menuStepFoodCategory:
		return "Enter food category (appetizer/maincourse/dessert):"
	default:
		return "Enter food price:"
	}
}

func (f *addMenuFlow) submit(answer string) ([]outputLine, bool) {
	answer = strings.TrimSpace(answer)
	switch f.step {
	case menuStepBusiness:
		b, out, ok := f.env.lookupBusiness(answer)
		if !ok {
			return out, true
		}
		f.business = b.Name
		f.step = menuStepName
		if b.HasMenu() {
			return []outputLine{info("Current menu %q will be replaced", b.Menu.Name)}, false
		}
		return nil, false

	case menuStepName:
		f.menuName = answer
		f.step = menuStepPrice
		return nil, false

	case menuStepPrice:
		var out []outputLine
		price, err := restaurant.ParsePrice(answer)
		if err != nil {
			out = append(out, f.env.warning(err))
		}
		f.price = price
		f.step = menuStepVeg
		return out, false

	case menuStepVeg:
		var out []outputLine
		isVeg, err := restaurant.ParseVegFlag(answer)
		if err != nil {
			out = append(out, f.env.warning(err))
		}
		f.builder = restaurant.NewMenuBuilder(f.menuName, f.price, isVeg)
		f.step = menuStepCuisine
		return out, false

	case menuStepCuisine:
		if isDone(answer) {
			return f.finish()
		}
		f.builder.StartCuisine(answer)
		f.step = menuStepFoodName
		return nil, false

	case menuStepFoodName:
		if isDone(answer) {
			name := f.builder.CurrentCuisine()
			f.builder.EndCuisine()
			f.step = menuStepCuisine
			return []outputLine{info("Cuisine %q saved", name)}, false
		}
		f.food = restaurant.Food{Name: answer}
		f.step = menuStepFoodType
		return nil, false

	case menuStepFoodType:
		var out []outputLine
		t, err := restaurant.ParseFoodType(answer)
		if err != nil {
			out = append(out, f.env.warning(err))
		}
		f.food.Type = t
		f.step = menuStepFoodCategory
		return out, false

	case menuStepFoodCategory:
		var out []outputLine
		c, err := restaurant.ParseFoodCategory(answer)
		if err != nil {
			out = append(out, f.env.warning(err))
		}
		f.food.Category = c
		f.step = menuStepFoodPrice
		return out, false

	default:
		var out []outputLine
		price, err := restaurant.ParsePrice(answer)
		if err != nil {
			out = append(out, f.env.warning(err))
		}
		f.food.Price = price
		if err := f.builder.AddFood(f.food); err != nil {
			out = append(out, failure("%v", err))
		} else {
			out = append(out, info("Added %s (%s, %s) at %s", f.food.Name, f.food.Type, f.food.Category, f.env.price(price)))
		}
		f.food = restaurant.Food{}
		f.step = menuStepFoodName
		return out, false
	}
}

func (f *addMenuFlow) finish() ([]outputLine, bool) {
	menu := f.builder.Build()
	if err := f.env.store.AddMenu(f.business, menu); err != nil {
		f.env.log.Error("Add menu to %q: %v", f.business, err)
		return []outputLine{failure("Business not found!")}, true
	}
	foods := 0
	for _, c := range menu.Cuisines {
		foods += len(c.Foods)
	}
	f.env.log.Info("Menu %q added to %q (%d cuisine(s), %d food(s))", menu.Name, f.business, len(menu.Cuisines), foods)
	return []outputLine{success("Menu added successfully!")}, true
}
