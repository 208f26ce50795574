package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tbranch/foreman/internal/config"
	"github.com/tbranch/foreman/internal/datasource"
	"github.com/tbranch/foreman/internal/prefs"
	"github.com/tbranch/foreman/internal/store"
	"github.com/tbranch/foreman/internal/workorder"
)

// Options configures the console.
type Options struct {
	Context   context.Context
	Store     *store.Store[Session]
	Loader    *datasource.Loader
	Presets   []config.Preset
	ThemeName string
	PrefsPath string
}

// changeFlags bridges store notifications into the update loop. Watcher
// callbacks fire synchronously inside store.Update while a key is being
// handled; they only mark what changed, and the model schedules the
// follow-up work itself. The model is a value, so the flags live behind
// a shared pointer.
type changeFlags struct {
	mu     sync.Mutex
	filter bool
	feed   bool
}

func (c *changeFlags) markFilter() {
	c.mu.Lock()
	c.filter = true
	c.mu.Unlock()
}

func (c *changeFlags) markFeed() {
	c.mu.Lock()
	c.feed = true
	c.mu.Unlock()
}

func (c *changeFlags) take() (filter, feed bool) {
	c.mu.Lock()
	filter, feed = c.filter, c.feed
	c.filter, c.feed = false, false
	c.mu.Unlock()
	return filter, feed
}

type loadMsg struct {
	result datasource.Result
	err    error
}

// filteredMsg carries a recomputed visible set. gen ties it to the
// filter inputs it was computed from; a stale generation is discarded.
type filteredMsg struct {
	gen    int
	orders []workorder.Order
}

// Model is the bubbletea model for the console.
type Model struct {
	ctx       context.Context
	store     *store.Store[Session]
	loader    *datasource.Loader
	presets   []config.Preset
	prefsPath string

	changes     *changeFlags
	inputsWatch *store.Watcher[Session, filterInputs]
	feedWatch   *store.Watcher[Session, Feed]

	themeName string
	styles    Styles
	keys      keyMap

	visible   []workorder.Order
	filterGen int
	selected  int
	offset    int

	searchInput textinput.Model
	searching   bool

	filterForm filterForm
	showFilter bool
	showHelp   bool

	toast   toast
	loading bool

	width  int
	height int
}

func newModel(opts Options) Model {
	search := textinput.New()
	search.Placeholder = "search id, title, assignee, department, status"
	search.Prompt = "/ "
	search.CharLimit = 80

	m := Model{
		ctx:         opts.Context,
		store:       opts.Store,
		loader:      opts.Loader,
		presets:     opts.Presets,
		prefsPath:   opts.PrefsPath,
		changes:     &changeFlags{},
		themeName:   GetTheme(opts.ThemeName).Name,
		styles:      GetTheme(opts.ThemeName).Styles(),
		keys:        defaultKeyMap(),
		searchInput: search,
		loading:     true,
	}
	m.inputsWatch = store.Watch(opts.Store, selectFilterInputs, func(filterInputs) {
		m.changes.markFilter()
	})
	m.feedWatch = store.Watch(opts.Store, selectFeed, func(Feed) {
		m.changes.markFeed()
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		result, err := loader.Load(ctx)
		return loadMsg{result: result, err: err}
	}
}

func filterCmd(gen int, in filterInputs) tea.Cmd {
	return func() tea.Msg {
		return filteredMsg{gen: gen, orders: workorder.Apply(in.Orders, in.Query, in.Criteria)}
	}
}

// consumeChanges drains the watcher flags after a store update and
// schedules the deferred work they call for. The filter recompute runs
// as a command so typing stays responsive over large record sets; each
// recompute supersedes any still in flight via the generation counter.
func (m Model) consumeChanges(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	filterDirty, feedDirty := m.changes.take()
	if filterDirty {
		m.filterGen++
		cmds = append(cmds, filterCmd(m.filterGen, m.inputsWatch.Current()))
	}
	if feedDirty {
		feed := m.feedWatch.Current()
		if feed.Source == datasource.SourceMock && feed.FallbackReason != "" {
			cmds = append(cmds, m.showToast("API unreachable, showing generated data", toastWarning))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpireMsg:
		return m, nil

	case loadMsg:
		m.loading = false
		if msg.err != nil {
			if m.ctx.Err() != nil {
				return m, tea.Quit
			}
			return m, m.showToast(msg.err.Error(), toastError)
		}
		m.selected = 0
		m.offset = 0
		m.store.Update(func(s Session) Session {
			s.Orders = msg.result.Orders
			s.Feed = Feed{
				Source:         msg.result.Source,
				FallbackReason: msg.result.FallbackReason,
				Total:          msg.result.Total,
				LoadedAt:       time.Now(),
			}
			return s
		})
		return m.consumeChanges(nil)

	case filteredMsg:
		if msg.gen != m.filterGen {
			return m, nil
		}
		m.visible = msg.orders
		if m.selected >= len(m.visible) {
			m.selected = len(m.visible) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.offset = windowOffset(len(m.visible), m.selected, m.tableRows(), m.offset)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from any mode
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showFilter {
		return m.handleFilterKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.themeName = NextTheme(m.themeName)
		m.styles = GetTheme(m.themeName).Styles()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.themeName}); err != nil {
				return m, m.showToast(fmt.Sprintf("save prefs: %v", err), toastWarning)
			}
		}
		return m, m.showToast("Theme: "+m.themeName, toastInfo)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.FilterModal):
		m.filterForm = newFilterForm(m.store.State().Criteria)
		m.showFilter = true
		return m, nil

	case key.Matches(msg, m.keys.ClearFilter):
		m.searchInput.SetValue("")
		m.store.Update(func(s Session) Session {
			s.Query = ""
			s.Criteria = workorder.Criteria{}
			return s
		})
		return m.consumeChanges(nil)

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Up):
		return m.moveSelection(-1), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveSelection(1), nil
	case key.Matches(msg, m.keys.Top):
		return m.setSelection(0), nil
	case key.Matches(msg, m.keys.Bottom):
		return m.setSelection(len(m.visible) - 1), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.moveSelection(-m.tableRows()), nil
	case key.Matches(msg, m.keys.PageDown):
		return m.moveSelection(m.tableRows()), nil
	}

	return m, nil
}

// handleSearchKey routes keys to the search field. Every edit is echoed
// into the store synchronously before this function returns; only the
// filter recompute is deferred.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	term := m.searchInput.Value()
	m.store.Update(func(s Session) Session {
		s.Query = term
		return s
	})
	return m.consumeChanges([]tea.Cmd{cmd})
}

func (m Model) moveSelection(delta int) Model {
	return m.setSelection(m.selected + delta)
}

func (m Model) setSelection(idx int) Model {
	if len(m.visible) == 0 {
		m.selected = 0
		m.offset = 0
		return m
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.visible) {
		idx = len(m.visible) - 1
	}
	m.selected = idx
	m.offset = windowOffset(len(m.visible), m.selected, m.tableRows(), m.offset)
	return m
}

// tableRows is how many data rows fit between the header chrome and the
// footer.
func (m Model) tableRows() int {
	return visibleRows(m.contentHeight())
}

func (m Model) contentHeight() int {
	// header, search line, blank, footer
	h := m.height - 4
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	s := m.store.State()

	var header strings.Builder
	header.WriteString(m.styles.Title.Render("FOREMAN"))
	header.WriteString(m.styles.MutedText.Render("  work orders  "))
	switch {
	case m.loading:
		header.WriteString(m.styles.MutedText.Render("loading..."))
	case s.Feed.Source == datasource.SourceMock:
		header.WriteString(m.styles.SourceMock.Render("MOCK DATA"))
	case s.Feed.Source == datasource.SourceAPI:
		header.WriteString(m.styles.SourceAPI.Render("live"))
	}
	header.WriteString(m.styles.MutedText.Render(
		fmt.Sprintf("  %d of %d", len(m.visible), len(s.Orders))))

	searchLine := ""
	if m.searching {
		searchLine = m.searchInput.View()
	} else if s.Query != "" {
		searchLine = m.styles.MutedText.Render("/ ") + m.styles.Accent.Render(s.Query)
	}
	if !m.searching && !s.Criteria.IsZero() {
		searchLine += m.styles.MutedText.Render("  [filters active]")
	}

	table := m.renderTable(m.width, m.contentHeight())

	footer := m.styles.Footer.Width(m.width).Render(helpLine())
	if t := m.renderToast(); t != "" {
		footer = t
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Width(m.width).Render(header.String()),
		searchLine,
		table,
	)
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, body)
	view := content + "\n" + footer

	if m.showFilter {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderFilterForm())
	}
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderHelp())
	}
	return view
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Search, m.keys.FilterModal, m.keys.ClearFilter, m.keys.Reload,
		m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom,
		m.keys.PageUp, m.keys.PageDown,
		m.keys.CycleTheme, m.keys.Help, m.keys.Quit,
	}
	lines := []string{m.styles.Title.Render("Keys"), ""}
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%s  %s",
			m.styles.Accent.Render(pad(h.Key, 8)), h.Desc))
	}
	return m.styles.ModalBorder.Render(strings.Join(lines, "\n"))
}

// Run starts the console and blocks until it exits.
func Run(opts Options) error {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	m := newModel(opts)
	defer m.inputsWatch.Close()
	defer m.feedWatch.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	if err != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
