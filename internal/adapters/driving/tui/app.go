package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/messages"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/styles"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/views/search"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
)

// Options carries the query settings the TUI searches with.
type Options struct {
	// Table is the table to query. Empty selects the default.
	Table string

	// Embedding configures the provider used to embed queries. It must
	// match the options the table was indexed with.
	Embedding domain.EmbeddingOptions
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// searchView is the single search view component.
	searchView *search.View

	// query mirrors the search view's current query, exposed via Query().
	query string

	// results mirrors the search view's results, exposed via Results().
	results []domain.RankedArticle

	// selectedIndex mirrors the search view's cursor, exposed via SelectedIndex().
	selectedIndex int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	searchOpts := domain.SearchOptions{
		Table:     opts.Table,
		Embedding: opts.Embedding,
	}
	searchView := search.NewView(s, nil, ports.Search, ports.Articles, searchOpts)

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		searchView: searchView,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("canopy - Article Search"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		a.searchView, cmd = a.searchView.Update(msg)
		a.syncFromSearchView()
		return a, cmd

	case messages.SearchCompleted, messages.ArticleLoaded:
		a.searchView, cmd = a.searchView.Update(msg)
		a.syncFromSearchView()
		a.selectedIndex = 0
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the search view
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// syncFromSearchView mirrors view state into the app for accessors.
func (a *App) syncFromSearchView() {
	a.query = a.searchView.Query()
	a.results = a.searchView.Results()
	a.selectedIndex = a.searchView.SelectedIndex()
	a.err = a.searchView.Err()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	return a.searchView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.query
}

// Results returns the current search results.
func (a *App) Results() []domain.RankedArticle {
	return a.results
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.selectedIndex
}

// Mode returns the search view's current mode.
func (a *App) Mode() search.Mode {
	return a.searchView.Mode()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also set searchView dimensions so it renders properly
	a.searchView.SetDimensions(width, height)
}
