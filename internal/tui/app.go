// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for restaurateur.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The main menu starts flows (see flows.go). While a flow runs, the text
// input collects one answer per Enter and the transcript shows results.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/restaurateur/internal/config"
	"github.com/kingrea/restaurateur/internal/logbook"
	"github.com/kingrea/restaurateur/internal/restaurant"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu appState = iota // Main menu with "Create a new business", etc.
	stateFlow                     // A flow is collecting answers
)

const maxTranscriptLines = 200

const (
	menuCreateBusiness = "Create a new business"
	menuAddMenu        = "Add a menu to an existing business"
	menuAddOrder       = "Add an order to an existing business"
	menuShowOrders     = "Show orders for an existing business"
	menuRemoveOrder    = "Remove an order"
	menuRemoveBusiness = "Remove a business"
	menuPaymentMode    = "Set default payment mode"
	menuExit           = "Exit"
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook attaches the journal that records menu choices and mutations.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// WithClock overrides the clock used to prefill order dates.
func WithClock(clock func() time.Time) AppOption {
	return func(a *App) {
		if clock != nil {
			a.now = clock
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	store   *restaurant.Store
	logbook *logbook.Logbook
	now     func() time.Time

	// UI components
	mainMenu   list.Model      // The main menu list
	input      textinput.Model // Answer field for the active flow
	flow       flow
	transcript []outputLine
	statusMsg  string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App over store. The caller owns the store; the App
// only drives its operations.
func NewApp(cfg *config.Config, store *restaurant.Store, opts ...AppOption) *App {
	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "⬡ RESTAURATEUR"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)
	mainMenu.DisableQuitKeybindings()

	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 256

	app := &App{
		state:    stateMainMenu,
		config:   cfg,
		store:    store,
		now:      time.Now,
		mainMenu: mainMenu,
		input:    input,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.logInfo("Session opened · %d business(es) in store", store.Len())
	return app
}

// buildMainMenu creates the main menu items
func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: menuCreateBusiness, desc: "Register a business by name, address and phone"},
		menuItem{title: menuAddMenu, desc: "Replace a business's menu with cuisines and foods"},
		menuItem{title: menuAddOrder, desc: "Pick foods from a business's menu and record the order"},
		menuItem{title: menuShowOrders, desc: "List every order of a business"},
		menuItem{title: menuRemoveOrder, desc: "Remove an order by ID, or all orders on a date"},
		menuItem{title: menuRemoveBusiness, desc: "Drop a business with its menu and orders"},
		menuItem{title: menuPaymentMode, desc: "Choose the payment mode used when an order leaves it blank"},
		menuItem{title: menuExit, desc: "Quit restaurateur"},
	}
}

func (a *App) env() *flowEnv {
	return &flowEnv{store: a.store, cfg: a.config, log: a.logbook, now: a.now}
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width/2), max(0, msg.Height-12))
		a.input.Width = max(10, msg.Width/2-8)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu {
				a.logInfo("Session closed")
				return a, tea.Quit
			}
		case "esc":
			if a.state == stateFlow {
				return a.cancelFlow()
			}
		case "enter":
			switch a.state {
			case stateMainMenu:
				return a.handleMainMenuSelection()
			case stateFlow:
				return a.submitAnswer()
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateMainMenu:
		a.mainMenu, cmd = a.mainMenu.Update(msg)
	case stateFlow:
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	a.logInfo("Menu · %s selected", item.title)

	env := a.env()
	switch item.title {
	case menuCreateBusiness:
		return a.startFlow(newCreateBusinessFlow(env))
	case menuAddMenu:
		return a.startFlow(newAddMenuFlow(env))
	case menuAddOrder:
		return a.startFlow(newAddOrderFlow(env))
	case menuShowOrders:
		return a.startFlow(newShowOrdersFlow(env))
	case menuRemoveOrder:
		return a.startFlow(newRemoveOrderFlow(env))
	case menuRemoveBusiness:
		return a.startFlow(newRemoveBusinessFlow(env))
	case menuPaymentMode:
		return a.startFlow(newPaymentModeFlow(env))
	case menuExit:
		a.logInfo("Session closed")
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) startFlow(f flow) (tea.Model, tea.Cmd) {
	a.state = stateFlow
	a.flow = f
	a.transcript = nil
	a.statusMsg = "Enter → submit    Esc → cancel"
	a.input.Reset()
	a.input.Placeholder = ""
	return a, a.input.Focus()
}

func (a *App) submitAnswer() (tea.Model, tea.Cmd) {
	if a.flow == nil {
		return a.returnToMainMenu()
	}
	answer := a.input.Value()
	a.input.Reset()
	a.appendTranscript(outputLine{kind: lineEcho, text: fmt.Sprintf("%s %s", a.flow.prompt(), strings.TrimSpace(answer))})
	out, done := a.flow.submit(answer)
	a.appendTranscript(out...)
	if !done {
		return a, nil
	}
	if len(out) > 0 {
		a.statusMsg = out[len(out)-1].text
	} else {
		a.statusMsg = ""
	}
	return a.returnToMainMenu()
}

func (a *App) cancelFlow() (tea.Model, tea.Cmd) {
	if a.flow != nil {
		a.logInfo("Flow cancelled · %s", a.flow.title())
	}
	a.appendTranscript(warn("Cancelled"))
	a.statusMsg = "Cancelled"
	return a.returnToMainMenu()
}

// returnToMainMenu transitions back to the main menu. The transcript stays
// visible until the next flow starts.
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	a.state = stateMainMenu
	a.flow = nil
	a.input.Blur()
	a.input.Reset()
	return a, nil
}

func (a *App) appendTranscript(lines ...outputLine) {
	a.transcript = append(a.transcript, lines...)
	if over := len(a.transcript) - maxTranscriptLines; over > 0 {
		a.transcript = a.transcript[over:]
	}
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
		rightWidth = 0
	}

	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
		if len(a.transcript) > 0 {
			content = lipgloss.JoinVertical(lipgloss.Left, content, "", a.renderTranscript(8))
		}
	case stateFlow:
		content = a.renderFlow()
	}
	return a.renderBoard(content, leftWidth, rightWidth)
}

func (a *App) renderFlow() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(a.flow.title())
	promptLine := lipgloss.NewStyle().Bold(true).Render(a.flow.prompt())
	visible := 12
	if a.height > 0 {
		visible = max(4, a.height-16)
	}
	sections := []string{title, ""}
	if transcript := a.renderTranscript(visible); transcript != "" {
		sections = append(sections, transcript, "")
	}
	sections = append(sections, promptLine, a.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderTranscript(maxLines int) string {
	lines := a.transcript
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, lineStyle(line.kind).Render(line.text))
	}
	return strings.Join(rendered, "\n")
}

func lineStyle(kind lineKind) lipgloss.Style {
	switch kind {
	case lineEcho:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	case lineSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	case lineWarn:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	case lineError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	default:
		return lipgloss.NewStyle()
	}
}

func (a *App) renderBoard(mainContent string, leftWidth, rightWidth int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ RESTAURATEUR")
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(mainContent)
	body := leftBox
	if rightWidth > 0 {
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(a.renderBusinessesPanel(rightWidth - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	}
	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderBusinessesPanel(width int) string {
	names := a.store.BusinessNames()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("Businesses (%d)", len(names)))
	if len(names) == 0 {
		note := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("No businesses yet. Create one to begin.")
		return lipgloss.JoinVertical(lipgloss.Left, title, note)
	}
	rows := make([]string, 0, len(names))
	for _, name := range names {
		b, ok := a.store.GetBusiness(name)
		if !ok {
			continue
		}
		menu := "no menu"
		if b.HasMenu() {
			menu = fmt.Sprintf("menu %s · %d cuisine(s)", b.Menu.Name, len(b.Menu.Cuisines))
		}
		row := fmt.Sprintf("%s\n%s · %d order(s)", b.Name, menu, len(b.Orders))
		rows = append(rows, lipgloss.NewStyle().Width(max(20, width)).Padding(0, 0, 1, 0).Render(row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil || a.config == nil {
		return ""
	}
	lines, total := a.logbook.Tail(a.config.LogLines())
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s · %d entries", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
