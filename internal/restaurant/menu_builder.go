package restaurant

// MenuBuilder collects cuisines and their foods one entry at a time, the way
// an operator types a menu in.
type MenuBuilder struct {
	menu    Menu
	current *Cuisine
}

// NewMenuBuilder starts an empty menu.
func NewMenuBuilder(name string, price float64, isVeg bool) *MenuBuilder {
	return &MenuBuilder{menu: Menu{
		Name:     name,
		Price:    price,
		IsVeg:    isVeg,
		Cuisines: map[string]Cuisine{},
	}}
}

// StartCuisine closes any open cuisine and opens a new one.
func (b *MenuBuilder) StartCuisine(name string) {
	b.EndCuisine()
	b.current = &Cuisine{Name: name, Foods: []Food{}}
}

// InCuisine reports whether a cuisine is open.
func (b *MenuBuilder) InCuisine() bool {
	return b.current != nil
}

// CurrentCuisine returns the name of the open cuisine.
func (b *MenuBuilder) CurrentCuisine() string {
	if b.current == nil {
		return ""
	}
	return b.current.Name
}

// AddFood appends f to the open cuisine.
func (b *MenuBuilder) AddFood(f Food) error {
	if b.current == nil {
		return ErrNoCuisine
	}
	b.current.Foods = append(b.current.Foods, f)
	return nil
}

// EndCuisine stores the open cuisine, replacing one of the same name.
func (b *MenuBuilder) EndCuisine() {
	if b.current == nil {
		return
	}
	b.menu.AddCuisine(*b.current)
	b.current = nil
}

// Build closes any open cuisine and returns a copy of the menu.
func (b *MenuBuilder) Build() Menu {
	b.EndCuisine()
	return *b.menu.Clone()
}
