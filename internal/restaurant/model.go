// internal/restaurant/model.go
//
// Entity types for businesses, menus and orders. Entities are plain values:
// nothing here validates prices, ages or names. The Store hands out deep
// copies, so a value obtained from it can be mutated freely.

package restaurant

import "sort"

// FoodType marks a food as vegetarian or not.
type FoodType int

const (
	Veg FoodType = iota
	NonVeg
)

func (t FoodType) String() string {
	switch t {
	case Veg:
		return "Veg"
	case NonVeg:
		return "NonVeg"
	default:
		return "Unknown"
	}
}

// FoodCategory is the course a food is served as.
type FoodCategory int

const (
	Appetizer FoodCategory = iota
	MainCourse
	Dessert
)

func (c FoodCategory) String() string {
	switch c {
	case Appetizer:
		return "Appetizer"
	case MainCourse:
		return "MainCourse"
	case Dessert:
		return "Dessert"
	default:
		return "Unknown"
	}
}

// PaymentMode is how a customer settled an order.
type PaymentMode int

const (
	Cash PaymentMode = iota
	Card
	UPI
	Wallet
)

// PaymentModes lists every PaymentMode in display order.
var PaymentModes = []PaymentMode{Cash, Card, UPI, Wallet}

func (m PaymentMode) String() string {
	switch m {
	case Cash:
		return "Cash"
	case Card:
		return "Card"
	case UPI:
		return "UPI"
	case Wallet:
		return "Wallet"
	default:
		return "Unknown"
	}
}

// Food is a single dish on a menu.
type Food struct {
	Name     string
	Type     FoodType
	Category FoodCategory
	Price    float64
}

// Cuisine groups foods under a name that is unique within its menu.
type Cuisine struct {
	Name  string
	Foods []Food
}

// Food returns the first food whose name matches exactly.
func (c Cuisine) Food(name string) (Food, bool) {
	for _, f := range c.Foods {
		if f.Name == name {
			return f, true
		}
	}
	return Food{}, false
}

// Clone returns a copy that shares no backing array with c.
func (c Cuisine) Clone() Cuisine {
	out := Cuisine{Name: c.Name}
	if c.Foods != nil {
		out.Foods = append(make([]Food, 0, len(c.Foods)), c.Foods...)
	}
	return out
}

// Menu is the catalog a business currently offers. Price is a flat
// menu-level price and is unrelated to the food prices.
type Menu struct {
	Name     string
	Price    float64
	IsVeg    bool
	Cuisines map[string]Cuisine
}

// Cuisine looks up a cuisine by exact name.
func (m *Menu) Cuisine(name string) (Cuisine, bool) {
	if m == nil {
		return Cuisine{}, false
	}
	c, ok := m.Cuisines[name]
	return c, ok
}

// AddCuisine inserts c, replacing any cuisine with the same name.
func (m *Menu) AddCuisine(c Cuisine) {
	if m.Cuisines == nil {
		m.Cuisines = map[string]Cuisine{}
	}
	m.Cuisines[c.Name] = c
}

// CuisineNames returns the cuisine names sorted for display.
func (m *Menu) CuisineNames() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Cuisines))
	for name := range m.Cuisines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the menu. A nil menu clones to nil.
func (m *Menu) Clone() *Menu {
	if m == nil {
		return nil
	}
	out := &Menu{Name: m.Name, Price: m.Price, IsVeg: m.IsVeg}
	if m.Cuisines != nil {
		out.Cuisines = make(map[string]Cuisine, len(m.Cuisines))
		for name, c := range m.Cuisines {
			out.Cuisines[name] = c.Clone()
		}
	}
	return out
}

// Customer is contact data captured with an order.
type Customer struct {
	Name    string
	Age     uint8
	Address string
	Phone   string
}

// FoodOrder is one priced line of an order. Food is a snapshot taken when
// the line was created, so later menu changes do not affect it.
type FoodOrder struct {
	Food     Food
	Quantity int
	Price    float64
}

// Order is a finalized purchase recorded against one business.
type Order struct {
	ID          string
	Foods       []FoodOrder
	Customer    Customer
	Date        string
	PaymentMode PaymentMode
	Price       float64
}

// Total sums the line prices. It does not consult Price.
func (o Order) Total() float64 {
	var total float64
	for _, line := range o.Foods {
		total += line.Price
	}
	return total
}

// Clone returns a copy that shares no backing array with o.
func (o Order) Clone() Order {
	out := o
	if o.Foods != nil {
		out.Foods = append(make([]FoodOrder, 0, len(o.Foods)), o.Foods...)
	}
	return out
}

// Business is a managed restaurant, identified by its name.
type Business struct {
	Name    string
	Address string
	Phone   string
	Menu    *Menu
	Orders  []Order
}

// NewBusiness creates a business with no menu and no orders.
func NewBusiness(name, address, phone string) Business {
	return Business{Name: name, Address: address, Phone: phone}
}

// HasMenu reports whether a menu is attached.
func (b Business) HasMenu() bool {
	return b.Menu != nil
}

// Clone returns a deep copy of the business, its menu and its orders.
func (b Business) Clone() Business {
	out := b
	out.Menu = b.Menu.Clone()
	if b.Orders != nil {
		out.Orders = make([]Order, len(b.Orders))
		for i, o := range b.Orders {
			out.Orders[i] = o.Clone()
		}
	}
	return out
}
