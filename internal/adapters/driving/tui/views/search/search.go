// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/components/input"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/components/list"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/components/status"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/keymap"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/messages"
	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/tui/styles"
	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
)

// ErrMissingSearchService is surfaced in the status bar when the view
// was wired without a search service.
var ErrMissingSearchService = errors.New("search view: search service is required")

// Mode identifies what the view is currently focused on.
type Mode int

const (
	// ModeInput means the query input has focus.
	ModeInput Mode = iota
	// ModeResults means the result list has focus.
	ModeResults
	// ModeReading means an article is open for reading.
	ModeReading
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService  driving.SearchService
	articleService driving.ArticleService
	searchOpts     domain.SearchOptions
	ctx            context.Context

	width  int
	height int
	ready  bool
	err    error
	mode   Mode

	// Reading state for the open article.
	article      *domain.Article
	lines        []string
	scrollOffset int
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	articleService driving.ArticleService,
	searchOpts domain.SearchOptions,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewQueryInput(s),
		list:           list.NewResultList(s),
		statusbar:      status.NewBar(s, km),
		searchService:  searchService,
		articleService: articleService,
		searchOpts:     searchOpts,
		ctx:            context.Background(),
		width:          80,
		height:         24,
		ready:          false,
		mode:           ModeInput,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ArticleLoaded:
		v.handleArticleLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.mode == ModeReading {
		return v.handleReadingKey(msg)
	}

	// Enter in input mode submits the search
	if msg.Type == tea.KeyEnter && v.mode == ModeInput {
		query := strings.TrimSpace(v.input.Value())
		if query == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		v.mode = ModeResults
		v.input.Blur()
		cmd := v.performSearch(query)
		return v, cmd
	}

	// Esc in input mode quits; in results mode it returns to the input.
	if msg.Type == tea.KeyEsc {
		if v.mode == ModeInput {
			return v, func() tea.Msg {
				return messages.Quit{}
			}
		}
		v.mode = ModeInput
		v.input.Focus()
		return v, nil
	}

	// Input mode: all keys go to input
	if v.mode == ModeInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode: Enter opens the selected article
	if msg.Type == tea.KeyEnter {
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		return v, v.openArticle(result)
	}

	// Results mode: navigation and mode switches follow the keymap.
	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.mode = ModeInput
		v.input.Focus()
		v.input.SetValue("")
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// handleReadingKey processes keyboard input while an article is open.
func (v *View) handleReadingKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		v.scrollOffset += v.visibleLines()
		if max := v.maxScrollOffset(); v.scrollOffset > max {
			v.scrollOffset = max
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "esc", "q":
		v.mode = ModeResults
		v.article = nil
		v.lines = nil
		v.scrollOffset = 0
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetMessage("")
	}

	return v, nil
}

// performSearch executes a search and returns results.
func (v *View) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrMissingSearchService}
		}

		results, err := v.searchService.Search(v.ctx, query, v.searchOpts)
		if err != nil {
			return messages.SearchCompleted{Results: nil, Err: err}
		}
		return messages.SearchCompleted{Results: results, Err: nil}
	}
}

// openArticle loads the full article behind a result for reading.
func (v *View) openArticle(result *domain.RankedArticle) tea.Cmd {
	return func() tea.Msg {
		if v.articleService == nil {
			// Results already carry the indexed body.
			article := result.Article
			return messages.ArticleLoaded{Article: &article}
		}

		article, err := v.articleService.GetBySlug(v.ctx, v.searchOpts.Table, result.Slug)
		if err != nil {
			return messages.ArticleLoaded{Err: err}
		}
		return messages.ArticleLoaded{Article: article}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Results))

	// Switch to results mode after successful search
	v.mode = ModeResults
	v.input.Blur()
}

// handleArticleLoaded opens the reading pane for a loaded article.
func (v *View) handleArticleLoaded(msg messages.ArticleLoaded) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.article = msg.Article
	v.scrollOffset = 0
	v.wrapContent()
	v.mode = ModeReading
	v.statusbar.SetState(status.StateReading)
	v.statusbar.SetMessage(msg.Article.Slug)
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.mode == ModeReading {
		return v.viewReading()
	}

	sections := make([]string, 0, 8)

	// Header
	header := v.styles.Title.Render("Canopy")
	sections = append(sections, header, "")

	// Search input
	inputView := v.input.View()
	sections = append(sections, inputView, "")

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Results list
	listView := v.list.View()
	sections = append(sections, listView)

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewReading renders the open article.
func (v *View) viewReading() string {
	var b strings.Builder

	// Title
	title := "Article"
	if v.article != nil {
		if v.article.Title != "" {
			title = v.article.Title
		} else {
			title = v.article.Slug
		}
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	// Metadata line
	if v.article != nil {
		meta := v.article.Slug
		if len(v.article.Tags) > 0 {
			meta += "  [" + strings.Join(v.article.Tags, ", ") + "]"
		}
		b.WriteString(v.styles.Muted.Render(meta))
		b.WriteString("\n")
	}

	// Separator
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	// Empty content
	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(No content)"))
		b.WriteString("\n\n")
		b.WriteString(v.renderReadingHelp())
		return b.String()
	}

	// Content
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		b.WriteString("\n")
	}

	// Scroll position indicator
	if len(v.lines) > visible {
		b.WriteString("\n")
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage,
			v.scrollOffset+1,
			minInt(v.scrollOffset+visible, len(v.lines)),
			len(v.lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderReadingHelp())

	return b.String()
}

// renderReadingHelp renders the help footer for the reading pane.
func (v *View) renderReadingHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back")
}

// wrapContent wraps the open article's body to fit the view width.
func (v *View) wrapContent() {
	if v.article == nil || v.article.Content == "" {
		v.lines = nil
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	rawLines := strings.Split(v.article.Content, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		if len(line) <= contentWidth {
			v.lines = append(v.lines, line)
			continue
		}
		for len(line) > contentWidth {
			v.lines = append(v.lines, line[:contentWidth])
			line = line[contentWidth:]
		}
		if line != "" {
			v.lines = append(v.lines, line)
		}
	}
}

// visibleLines returns the number of content lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, metadata, separator, and help
	reserved := 7
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
	v.wrapContent()
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Mode returns the current view mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the current search results.
func (v *View) Results() []domain.RankedArticle {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.RankedArticle {
	return v.list.SelectedResult()
}

// Article returns the article open in the reading pane, if any.
func (v *View) Article() *domain.Article {
	return v.article
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.mode = ModeInput
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResults(nil)
	v.article = nil
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.mode == ModeInput
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
