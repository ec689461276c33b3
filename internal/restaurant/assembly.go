package restaurant

// AssemblyState is where an Assembler is in the cuisine/food selection loop.
type AssemblyState int

const (
	AwaitingCuisine AssemblyState = iota
	AwaitingFood
	SelectionConfirmed
	AssemblyDone
)

func (s AssemblyState) String() string {
	switch s {
	case AwaitingCuisine:
		return "awaiting cuisine"
	case AwaitingFood:
		return "awaiting food"
	case SelectionConfirmed:
		return "selection confirmed"
	case AssemblyDone:
		return "done"
	default:
		return "unknown"
	}
}

// Selection names one food by its cuisine.
type Selection struct {
	Cuisine string
	Food    string
}

// Assembler turns cuisine/food selections against a menu into order lines.
// Failed lookups leave the state unchanged so the caller can retry.
type Assembler struct {
	menu    *Menu
	state   AssemblyState
	cuisine Cuisine
	lines   []FoodOrder
}

// NewAssembler starts an assembly over menu. It returns ErrNoMenu when the
// business has no menu.
func NewAssembler(menu *Menu) (*Assembler, error) {
	if menu == nil {
		return nil, ErrNoMenu
	}
	return &Assembler{menu: menu, state: AwaitingCuisine}, nil
}

// State returns the current selection state.
func (a *Assembler) State() AssemblyState {
	return a.state
}

// Cuisine returns the cuisine chosen for the pending food selection.
func (a *Assembler) Cuisine() (Cuisine, bool) {
	if a.state != AwaitingFood {
		return Cuisine{}, false
	}
	return a.cuisine, true
}

// ChooseCuisine picks the cuisine for the next food.
func (a *Assembler) ChooseCuisine(name string) error {
	if a.state == AssemblyDone {
		return ErrAssemblyDone
	}
	c, ok := a.menu.Cuisine(name)
	if !ok {
		return ErrCuisineNotFound
	}
	a.cuisine = c
	a.state = AwaitingFood
	return nil
}

// ChooseFood adds one unit of the named food from the chosen cuisine.
func (a *Assembler) ChooseFood(name string) error {
	switch a.state {
	case AssemblyDone:
		return ErrAssemblyDone
	case AwaitingFood:
	default:
		return ErrNoCuisine
	}
	f, ok := a.cuisine.Food(name)
	if !ok {
		return ErrFoodNotFound
	}
	a.lines = append(a.lines, FoodOrder{Food: f, Quantity: 1, Price: f.Price})
	a.cuisine = Cuisine{}
	a.state = SelectionConfirmed
	return nil
}

// Select runs both lookups for one pair. On failure nothing is added and
// the assembler waits for a cuisine again.
func (a *Assembler) Select(sel Selection) error {
	if err := a.ChooseCuisine(sel.Cuisine); err != nil {
		return err
	}
	if err := a.ChooseFood(sel.Food); err != nil {
		a.Back()
		return err
	}
	return nil
}

// Back abandons the chosen cuisine.
func (a *Assembler) Back() {
	if a.state == AwaitingFood {
		a.cuisine = Cuisine{}
		a.state = AwaitingCuisine
	}
}

// Done ends the selection loop.
func (a *Assembler) Done() {
	a.cuisine = Cuisine{}
	a.state = AssemblyDone
}

// Lines returns a copy of the collected order lines.
func (a *Assembler) Lines() []FoodOrder {
	return append([]FoodOrder(nil), a.lines...)
}

// Subtotal sums the collected line prices.
func (a *Assembler) Subtotal() float64 {
	var total float64
	for _, line := range a.lines {
		total += line.Price
	}
	return total
}

// Finish ends the loop and builds the order. The order has no ID until the
// Store records it.
func (a *Assembler) Finish(customer Customer, mode PaymentMode, date string) Order {
	a.Done()
	foods := a.Lines()
	if foods == nil {
		foods = []FoodOrder{}
	}
	order := Order{
		Foods:       foods,
		Customer:    customer,
		Date:        date,
		PaymentMode: mode,
	}
	order.Price = order.Total()
	return order
}

// AssembleOrder builds an order from a fixed list of selections. It stops at
// the first selection that does not resolve and returns a *SelectionError.
func AssembleOrder(menu *Menu, selections []Selection, customer Customer, mode PaymentMode, date string) (Order, error) {
	a, err := NewAssembler(menu)
	if err != nil {
		return Order{}, err
	}
	for i, sel := range selections {
		if err := a.Select(sel); err != nil {
			return Order{}, &SelectionError{Index: i, Selection: sel, Err: err}
		}
	}
	return a.Finish(customer, mode, date), nil
}
