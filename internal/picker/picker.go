// Package picker provides the Bubble Tea interactive provider/model picker.
// Stage one lists available providers, stage two the chosen provider's
// models. Confirming a model ends the program with a Result.
package picker

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/joss/modelpick/internal/catalog"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// stage identifies which list has focus.
type stage int

const (
	stageProvider stage = iota
	stageModel
)

// providerItem implements list.Item for the provider stage.
type providerItem struct {
	provider catalog.Provider
	envVar   string
}

func (i providerItem) Title() string { return i.provider.Name }
func (i providerItem) Description() string {
	return fmt.Sprintf("%d models · %s", len(i.provider.Models), i.envVar)
}
func (i providerItem) FilterValue() string { return i.provider.Name }

// modelItem implements list.Item for the model stage.
type modelItem struct {
	model catalog.Model
	key   string
}

func (i modelItem) Title() string       { return i.model.Name }
func (i modelItem) Description() string { return i.key + ":" + i.model.Name }
func (i modelItem) FilterValue() string { return i.model.Name }

// Result is the outcome of a picker run.
type Result struct {
	Provider catalog.Provider
	Model    catalog.Model
	Aborted  bool
}

// Model is the picker's Bubble Tea model.
type Model struct {
	cat       *catalog.Catalog
	providers []catalog.Provider

	providerList list.Model
	modelList    list.Model
	stage        stage
	chosen       catalog.Provider
	errMsg       string

	result Result
	done   bool

	width  int
	height int
}

func newList(title string, width, height int) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("205")).
		BorderForeground(lipgloss.Color("205"))

	l := list.New([]list.Item{}, delegate, width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	return l
}

// New creates a picker over the catalog's available providers.
func New(cat *catalog.Catalog, available []catalog.Provider) Model {
	const width, height = 60, 14

	m := Model{
		cat:          cat,
		providers:    available,
		providerList: newList("Provider", width, height),
		modelList:    newList("Model", width, height),
		width:        width,
		height:       height,
	}

	items := make([]list.Item, 0, len(available))
	for _, p := range available {
		items = append(items, providerItem{provider: p, envVar: cat.KeyEnvVar(p.Key)})
	}
	m.providerList.SetItems(items)

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 4
		if listHeight < 5 {
			listHeight = 5
		}
		m.providerList.SetSize(msg.Width, listHeight)
		m.modelList.SetSize(msg.Width, listHeight)
		return m, nil

	case tea.KeyMsg:
		// While the list filter input is active, keys belong to the list.
		if m.activeList().FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.result = Result{Aborted: true}
			m.done = true
			return m, tea.Quit

		case "esc":
			if m.stage == stageModel {
				m.stage = stageProvider
				m.errMsg = ""
				return m, nil
			}
			m.result = Result{Aborted: true}
			m.done = true
			return m, tea.Quit

		case "enter":
			return m.confirm()
		}
	}

	var cmd tea.Cmd
	switch m.stage {
	case stageProvider:
		m.providerList, cmd = m.providerList.Update(msg)
	case stageModel:
		m.modelList, cmd = m.modelList.Update(msg)
	}
	return m, cmd
}

// confirm handles enter on the focused list.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageProvider:
		item, ok := m.providerList.SelectedItem().(providerItem)
		if !ok {
			return m, nil
		}
		if len(item.provider.Models) == 0 {
			m.errMsg = fmt.Sprintf("No models configured for %s.", item.provider.Name)
			return m, nil
		}
		m.chosen = item.provider
		m.errMsg = ""
		m.populateModels()
		m.stage = stageModel
		return m, nil

	case stageModel:
		item, ok := m.modelList.SelectedItem().(modelItem)
		if !ok {
			return m, nil
		}
		m.result = Result{Provider: m.chosen, Model: item.model}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// populateModels fills the model list for the chosen provider, cursor on
// the first entry.
func (m *Model) populateModels() {
	items := make([]list.Item, 0, len(m.chosen.Models))
	for _, mdl := range m.chosen.Models {
		items = append(items, modelItem{model: mdl, key: m.chosen.Key})
	}
	m.modelList.SetItems(items)
	m.modelList.ResetFilter()
	m.modelList.Select(0)
	m.modelList.Title = "Model · " + m.chosen.Name
}

func (m *Model) activeList() *list.Model {
	if m.stage == stageModel {
		return &m.modelList
	}
	return &m.providerList
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var view string
	switch m.stage {
	case stageProvider:
		view = m.providerList.View()
		view += helpStyle.Render("enter select · / filter · q quit")
	case stageModel:
		view = m.modelList.View()
		view += helpStyle.Render("enter confirm · esc back · / filter · q quit")
	}

	if m.errMsg != "" {
		view += "\n" + errorStyle.Render(m.errMsg)
	}
	return view
}

// Result returns the outcome after the program has finished.
func (m Model) Result() Result {
	return m.result
}

// Preselect positions the picker on the given provider (and optionally
// model) before the program starts. Unknown names are ignored.
func (m Model) Preselect(provider, model string) Model {
	for i, p := range m.providers {
		if p.Name != provider {
			continue
		}
		m.providerList.Select(i)
		if model == "" || !p.HasModel(model) {
			return m
		}
		m.chosen = p
		m.populateModels()
		m.stage = stageModel
		for j, mdl := range p.Models {
			if mdl.Name == model {
				m.modelList.Select(j)
				break
			}
		}
		return m
	}
	return m
}

// IsTerminal reports whether the picker can run on the given file.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run starts the interactive picker and blocks until a selection is
// confirmed or aborted. A non-empty query fuzzy-jumps the picker to the
// best-matching model before the first frame.
func Run(cat *catalog.Catalog, available []catalog.Provider, query string) (Result, error) {
	if !IsTerminal(os.Stdin) || !IsTerminal(os.Stdout) {
		return Result{}, fmt.Errorf("interactive picker needs a terminal; use 'modelpick list' instead")
	}

	m := New(cat, available)
	if provider, model, ok := ResolveQuery(available, query); ok {
		m = m.Preselect(provider, model)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected picker model %T", final)
	}
	return m.Result(), nil
}
