package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kingrea/restaurateur/internal/restaurant"
)

type orderStep int

const (
	orderStepBusiness orderStep = iota
	orderStepSelect
	orderStepCustomerName
	orderStepCustomerAge
	orderStepCustomerAddress
	orderStepCustomerPhone
	orderStepPayment
	orderStepDate
)

// addOrderFlow drives a restaurant.Assembler from typed answers. While
// selecting, the assembler state decides whether a cuisine or a food is
// asked for next.
type addOrderFlow struct {
	env       *flowEnv
	step      orderStep
	business  string
	assembler *restaurant.Assembler
	customer  restaurant.Customer
	payment   restaurant.PaymentMode
}

func newAddOrderFlow(env *flowEnv) *addOrderFlow {
	return &addOrderFlow{env: env}
}

func (f *addOrderFlow) title() string { return "Add an order to an existing business" }

func (f *addOrderFlow) prompt() string {
	switch f.step {
	case orderStepBusiness:
		return "Enter business name:"
	case orderStepSelect:
		if c, ok := f.assembler.Cuisine(); ok {
			return fmt.Sprintf("Enter food name from %s (or 'done' to pick another cuisine):", c.Name)
		}
		return "Enter cuisine name (or 'done' to finish):"
	case orderStepCustomerName:
		return "Enter customer name:"
	case orderStepCustomerAge:
		return "Enter customer age:"
	case orderStepCustomerAddress:
		return "Enter customer address:"
	case orderStepCustomerPhone:
		return "Enter customer phone:"
	case orderStepPayment:
		return fmt.Sprintf("Enter payment mode (cash/card/upi/wallet) [%s]:", strings.ToLower(f.env.paymentFallback().String()))
	default:
		return fmt.Sprintf("Enter order date [%s]:", f.env.today())
	}
}

func (f *addOrderFlow) submit(answer string) ([]outputLine, bool) {
	answer = strings.TrimSpace(answer)
	switch f.step {
	case orderStepBusiness:
		b, out, ok := f.env.lookupBusiness(answer)
		if !ok {
			return out, true
		}
		a, err := restaurant.NewAssembler(b.Menu)
		if err != nil {
			f.env.log.Warn("Order for %q: %v", b.Name, err)
			return []outputLine{failure("Menu not found for business!")}, true
		}
		f.business = b.Name
		f.assembler = a
		f.step = orderStepSelect
		return []outputLine{info("Cuisines: %s", strings.Join(b.Menu.CuisineNames(), ", "))}, false

	case orderStepSelect:
		return f.submitSelection(answer), false

	case orderStepCustomerName:
		f.customer.Name = answer
		f.step = orderStepCustomerAge
		return nil, false

	case orderStepCustomerAge:
		var out []outputLine
		age, err := restaurant.ParseAge(answer)
		if err != nil {
			out = append(out, f.env.warning(err))
		}
		f.customer.Age = age
		f.step = orderStepCustomerAddress
		return out, false

	case orderStepCustomerAddress:
		f.customer.Address = answer
		f.step = orderStepCustomerPhone
		return nil, false

	case orderStepCustomerPhone:
		f.customer.Phone = answer
		f.step = orderStepPayment
		return nil, false

	case orderStepPayment:
		var out []outputLine
		f.payment = f.env.paymentFallback()
		if answer != "" {
			mode, err := restaurant.ParsePaymentMode(answer, f.payment)
			if err != nil {
				out = append(out, f.env.warning(err))
			}
			f.payment = mode
		}
		f.step = orderStepDate
		return out, false

	default:
		date := answer
		if date == "" {
			date = f.env.today()
		}
		return f.finish(date), true
	}
}

func (f *addOrderFlow) submitSelection(answer string) []outputLine {
	if f.assembler.State() == restaurant.AwaitingFood {
		c, _ := f.assembler.Cuisine()
		if isDone(answer) {
			f.assembler.Back()
			return nil
		}
		err := f.assembler.ChooseFood(answer)
		if errors.Is(err, restaurant.ErrFoodNotFound) {
			return []outputLine{warn("Food not found in cuisine!")}
		}
		if err != nil {
			return []outputLine{failure("%v", err)}
		}
		lines := f.assembler.Lines()
		added := lines[len(lines)-1]
		return []outputLine{info("Added %s from %s · subtotal %s",
			added.Food.Name, c.Name, f.env.price(f.assembler.Subtotal()))}
	}

	if isDone(answer) {
		f.assembler.Done()
		f.step = orderStepCustomerName
		return []outputLine{info("%d item(s) selected", len(f.assembler.Lines()))}
	}
	if err := f.assembler.ChooseCuisine(answer); err != nil {
		return []outputLine{warn("Cuisine not found in menu!")}
	}
	c, _ := f.assembler.Cuisine()
	names := make([]string, 0, len(c.Foods))
	for _, food := range c.Foods {
		names = append(names, fmt.Sprintf("%s %s", food.Name, f.env.price(food.Price)))
	}
	return []outputLine{info("Foods: %s", strings.Join(names, ", "))}
}

func (f *addOrderFlow) finish(date string) []outputLine {
	order := f.assembler.Finish(f.customer, f.payment, date)
	stored, err := f.env.store.AddOrder(f.business, order)
	if err != nil {
		f.env.log.Error("Add order to %q: %v", f.business, err)
		return []outputLine{failure("Business not found!")}
	}
	f.env.log.Info("Order %s added to %q: %d item(s), total %s", stored.ID, f.business, len(stored.Foods), f.env.price(stored.Price))
	return []outputLine{success("Order added successfully! (ID %s, total %s)", stored.ID, f.env.price(stored.Price))}
}
