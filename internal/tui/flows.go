// internal/tui/flows.go
//
// A flow is one multi-prompt interaction started from the main menu, e.g.
// "create a business". The App shows prompt(), feeds every submitted line
// to submit() and prints the returned lines into the transcript. Flows
// never read the terminal themselves, which keeps them testable with plain
// string answers.

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kingrea/restaurateur/internal/config"
	"github.com/kingrea/restaurateur/internal/logbook"
	"github.com/kingrea/restaurateur/internal/restaurant"
)

// lineKind selects how a transcript line is styled.
type lineKind int

const (
	lineInfo lineKind = iota
	lineEcho
	lineSuccess
	lineWarn
	lineError
)

type outputLine struct {
	kind lineKind
	text string
}

func info(format string, args ...any) outputLine {
	return outputLine{kind: lineInfo, text: fmt.Sprintf(format, args...)}
}

func success(format string, args ...any) outputLine {
	return outputLine{kind: lineSuccess, text: fmt.Sprintf(format, args...)}
}

func warn(format string, args ...any) outputLine {
	return outputLine{kind: lineWarn, text: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) outputLine {
	return outputLine{kind: lineError, text: fmt.Sprintf(format, args...)}
}

type flow interface {
	// title names the flow in the UI
	title() string
	// prompt is the question for the next answer
	prompt() string
	// submit consumes one answer; done reports the flow has finished
	submit(answer string) (out []outputLine, done bool)
}

// flowEnv is what flows share: the store they mutate, settings and the
// journal.
type flowEnv struct {
	store *restaurant.Store
	cfg   *config.Config
	log   *logbook.Logbook
	now   func() time.Time
}

func (e *flowEnv) paymentFallback() restaurant.PaymentMode {
	if e.cfg == nil {
		return restaurant.Card
	}
	return e.cfg.DefaultPaymentMode()
}

func (e *flowEnv) today() string {
	now := time.Now()
	if e.now != nil {
		now = e.now()
	}
	if e.cfg == nil {
		return now.Format("2006-01-02")
	}
	return e.cfg.Today(now)
}

func (e *flowEnv) price(v float64) string {
	currency := ""
	if e.cfg != nil {
		currency = e.cfg.Currency()
	}
	return fmt.Sprintf("%s%.2f", currency, v)
}

// warning turns a parse warning into a transcript line and a journal entry.
func (e *flowEnv) warning(err error) outputLine {
	e.log.Warn("%v", err)
	var w *restaurant.Warning
	if errors.As(err, &w) {
		return warn("Invalid %s, defaulting to %s", w.Field, w.Fallback)
	}
	return warn("%v", err)
}

// lookupBusiness resolves a business name typed by the operator. The name is
// trimmed like every answer; matching is otherwise exact.
func (e *flowEnv) lookupBusiness(name string) (restaurant.Business, []outputLine, bool) {
	b, ok := e.store.GetBusiness(name)
	if !ok {
		e.log.Warn("Business %q not found", name)
		return restaurant.Business{}, []outputLine{failure("Business not found!")}, false
	}
	return b, nil, true
}

func isDone(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "done")
}

// createBusinessFlow asks for name, address and phone, then registers the
// business. An existing business with the same name is replaced.
type createBusinessFlow struct {
	env     *flowEnv
	step    int
	name    string
	address string
}

func newCreateBusinessFlow(env *flowEnv) *createBusinessFlow {
	return &createBusinessFlow{env: env}
}

func (f *createBusinessFlow) title() string { return "Create a new business" }

func (f *createBusinessFlow) prompt() string {
	switch f.step {
	case 0:
		return "Enter business name:"
	case 1:
		return "Enter business address:"
	default:
		return "Enter business phone:"
	}
}

func (f *createBusinessFlow) submit(answer string) ([]outputLine, bool) {
	answer = strings.TrimSpace(answer)
	switch f.step {
	case 0:
		f.name = answer
		f.step++
		return nil, false
	case 1:
		f.address = answer
		f.step++
		return nil, false
	}
	var out []outputLine
	if _, exists := f.env.store.GetBusiness(f.name); exists {
		out = append(out, warn("Replacing existing business %q and its menu and orders", f.name))
		f.env.log.Warn("Business %q replaced", f.name)
	}
	f.env.store.AddBusiness(restaurant.NewBusiness(f.name, f.address, answer))
	f.env.log.Info("Business %q created", f.name)
	return append(out, success("Business created successfully!")), true
}

// removeBusinessFlow deletes a business with its menu and orders.
type removeBusinessFlow struct {
	env *flowEnv
}

func newRemoveBusinessFlow(env *flowEnv) *removeBusinessFlow {
	return &removeBusinessFlow{env: env}
}

func (f *removeBusinessFlow) title() string { return "Remove a business" }

func (f *removeBusinessFlow) prompt() string { return "Enter business name:" }

func (f *removeBusinessFlow) submit(answer string) ([]outputLine, bool) {
	name := strings.TrimSpace(answer)
	if !f.env.store.RemoveBusiness(name) {
		f.env.log.Warn("Business %q not found", name)
		return []outputLine{failure("Business not found!")}, true
	}
	f.env.log.Info("Business %q removed", name)
	return []outputLine{success("Business removed successfully!")}, true
}

// showOrdersFlow prints every order of one business.
type showOrdersFlow struct {
	env *flowEnv
}

func newShowOrdersFlow(env *flowEnv) *showOrdersFlow {
	return &showOrdersFlow{env: env}
}

func (f *showOrdersFlow) title() string { return "Show orders for an existing business" }

func (f *showOrdersFlow) prompt() string { return "Enter business name:" }

func (f *showOrdersFlow) submit(answer string) ([]outputLine, bool) {
	b, out, ok := f.env.lookupBusiness(strings.TrimSpace(answer))
	if !ok {
		return out, true
	}
	orders := f.env.store.ShowOrders(b.Name)
	if len(orders) == 0 {
		return []outputLine{info("No orders found for business!")}, true
	}
	out = append(out, success("Orders for business '%s':", b.Name))
	for _, o := range orders {
		out = append(out, f.env.orderLines(o)...)
	}
	return out, true
}

func (e *flowEnv) orderLines(o restaurant.Order) []outputLine {
	out := []outputLine{
		info("Order %s · %s", o.ID, o.Date),
		info("  Customer: %s", o.Customer.Name),
		info("  Payment mode: %s", o.PaymentMode),
		info("  Price: %s", e.price(o.Price)),
		info("  Foods:"),
	}
	for _, line := range o.Foods {
		out = append(out, info("  - %s (%d x %s): %s",
			line.Food.Name, line.Quantity, e.price(line.Food.Price), e.price(line.Price)))
	}
	return out
}

// removeOrderFlow removes one order by ID, or every order on a date when
// the answer is not a known ID.
type removeOrderFlow struct {
	env      *flowEnv
	business string
}

func newRemoveOrderFlow(env *flowEnv) *removeOrderFlow {
	return &removeOrderFlow{env: env}
}

func (f *removeOrderFlow) title() string { return "Remove an order" }

func (f *removeOrderFlow) prompt() string {
	if f.business == "" {
		return "Enter business name:"
	}
	return "Enter order ID or date:"
}

func (f *removeOrderFlow) submit(answer string) ([]outputLine, bool) {
	answer = strings.TrimSpace(answer)
	if f.business == "" {
		b, out, ok := f.env.lookupBusiness(answer)
		if !ok {
			return out, true
		}
		f.business = b.Name
		return []outputLine{info("%d order(s) on record", len(f.env.store.ShowOrders(b.Name)))}, false
	}

	err := f.env.store.RemoveOrderByID(f.business, answer)
	if err == nil {
		f.env.log.Info("Order %s removed from %q", answer, f.business)
		return []outputLine{success("Removed 1 order")}, true
	}
	if !errors.Is(err, restaurant.ErrOrderNotFound) {
		f.env.log.Error("Remove order from %q: %v", f.business, err)
		return []outputLine{failure("Business not found!")}, true
	}
	removed, err := f.env.store.RemoveOrder(f.business, answer)
	if err != nil {
		f.env.log.Error("Remove orders from %q: %v", f.business, err)
		return []outputLine{failure("Business not found!")}, true
	}
	if removed == 0 {
		return []outputLine{warn("No order matched %q", answer)}, true
	}
	f.env.log.Info("%d order(s) dated %q removed from %q", removed, answer, f.business)
	return []outputLine{success("Removed %d order(s) dated %s", removed, answer)}, true
}

// paymentModeFlow changes the payment mode used when an order's answer is
// blank or malformed, and saves it to config.yaml.
type paymentModeFlow struct {
	env *flowEnv
}

func newPaymentModeFlow(env *flowEnv) *paymentModeFlow {
	return &paymentModeFlow{env: env}
}

func (f *paymentModeFlow) title() string { return "Set default payment mode" }

func (f *paymentModeFlow) prompt() string {
	return fmt.Sprintf("Enter default payment mode (cash/card/upi/wallet) [%s]:", strings.ToLower(f.env.paymentFallback().String()))
}

func (f *paymentModeFlow) submit(answer string) ([]outputLine, bool) {
	current := f.env.paymentFallback()
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return []outputLine{info("Default payment mode unchanged (%s)", current)}, true
	}
	mode, err := restaurant.ParsePaymentMode(answer, current)
	if err != nil {
		f.env.log.Warn("Default payment mode not changed: %v", err)
		return []outputLine{warn("Unknown payment mode %q, keeping %s", answer, current)}, true
	}
	if f.env.cfg == nil {
		return []outputLine{failure("Settings are not available")}, true
	}
	if err := f.env.cfg.SetDefaultPaymentMode(mode); err != nil {
		f.env.log.Error("Save default payment mode: %v", err)
		return []outputLine{failure("Could not save settings: %v", err)}, true
	}
	f.env.log.Info("Default payment mode set to %s", mode)
	return []outputLine{success("Default payment mode set to %s", mode)}, true
}
