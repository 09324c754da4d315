// Package tui is the interactive front end of autodoc. It follows the Elm
// architecture of bubbletea: App holds all state, Update turns messages into
// new state plus commands, and View renders the state.
package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/pkg/models"
)

// appState represents which screen is active
type appState int

const (
	stateLanding  appState = iota // document picker
	stateResume                   // resume wizard
	stateDocument                 // cover letter or portfolio form
)

// view is a screen that owns a form session
type view interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	resize(width, height int)
	close()
}

// menuItem implements list.Item for the landing menu
type menuItem struct {
	kind models.DocumentKind
	desc string
}

func (i menuItem) Title() string       { return i.kind.Title() }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.kind.Title() }

var appStyle = lipgloss.NewStyle().Padding(1, 2)

// App is the root model
type App struct {
	ctx   context.Context
	deps  Deps
	state appState

	menu   list.Model
	active view
	kind   models.DocumentKind

	width  int
	height int
}

// NewApp creates the landing screen. ctx bounds every request the UI makes.
func NewApp(ctx context.Context, deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.DefaultStyle == preview.StyleFixed {
		deps.DefaultStyle = preview.DefaultStyle(models.KindResume)
	}

	items := []list.Item{
		menuItem{kind: models.KindResume, desc: "Build an ATS friendly resume in seven steps"},
		menuItem{kind: models.KindCoverLetter, desc: "Write a cover letter for a specific job"},
		menuItem{kind: models.KindPortfolio, desc: "Generate a portfolio summary"},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "AutoDoc"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	return &App{
		ctx:   ctx,
		deps:  deps,
		state: stateLanding,
		menu:  menu,
	}
}

// Init is called once when the program starts
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(0, msg.Width-4), max(0, msg.Height-2))
		if a.active != nil {
			a.active.resize(max(0, msg.Width-4), max(0, msg.Height-2))
		}
		return a, nil

	case backToMenuMsg:
		a.closeActive()
		return a, nil

	case generatedMsg:
		// results for a form that is no longer open are dropped
		if a.active == nil || msg.kind != a.kind {
			a.deps.Logger.Debug("dropped result for closed form", "kind", msg.kind)
			return a, nil
		}
		return a, a.active.Update(msg)

	case printedMsg:
		if a.active == nil || msg.kind != a.kind {
			return a, nil
		}
		return a, a.active.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.closeActive()
			return a, tea.Quit
		case "q":
			if a.state == stateLanding {
				return a, tea.Quit
			}
		case "enter":
			if a.state == stateLanding {
				if item, ok := a.menu.SelectedItem().(menuItem); ok {
					return a, a.open(item.kind)
				}
				return a, nil
			}
		}
	}

	if a.active != nil {
		return a, a.active.Update(msg)
	}
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

// open starts a fresh session for kind
func (a *App) open(kind models.DocumentKind) tea.Cmd {
	a.closeActive()
	width, height := max(0, a.width-4), max(0, a.height-2)
	var cmd tea.Cmd
	switch kind {
	case models.KindResume:
		a.active, cmd = newResumeView(a.ctx, &a.deps, width, height)
		a.state = stateResume
	case models.KindCoverLetter:
		a.active, cmd = newDocumentView(a.ctx, &a.deps, coverLetterForm(), width, height)
		a.state = stateDocument
	case models.KindPortfolio:
		a.active, cmd = newDocumentView(a.ctx, &a.deps, portfolioForm(), width, height)
		a.state = stateDocument
	default:
		return nil
	}
	a.kind = kind
	a.deps.Logger.Info("form opened", "kind", kind)
	return cmd
}

// closeActive discards the open form and any request it has in flight
func (a *App) closeActive() {
	if a.active != nil {
		a.active.close()
		a.deps.Logger.Info("form closed", "kind", a.kind)
	}
	a.active = nil
	a.kind = ""
	a.state = stateLanding
}

// View renders the active screen
func (a *App) View() string {
	if a.active != nil {
		return appStyle.Render(a.active.View())
	}
	return appStyle.Render(a.menu.View())
}
