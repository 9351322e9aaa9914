// Package browser is the terminal frontend of the catalog: a bubbletea
// program holding the same filter, page and gallery state as the web pages.
package browser

import (
	"context"
	"strconv"

	"stackshop/internal/domain"
	"stackshop/internal/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

type CatalogBrowser interface {
	Browse(ctx context.Context, state domain.CatalogState) (*dto.CatalogListing, error)
}

type ProductLoader interface {
	Load(ctx context.Context, id string) (*domain.ProductDetail, error)
}

type Options struct {
	Search   string
	Category string
	// MarkdownStyle is a glamour style name, or "auto" to follow the terminal.
	MarkdownStyle string
}

type mode int

const (
	modeList mode = iota
	modeSearch
	modeGoto
	modeDetail
)

const (
	textLoading     = "Loading products..."
	textEmpty       = "No products found"
	textUnavailable = "Unable to load products"
	textNotFound    = "Product not found"
)

type productsLoadedMsg struct {
	ticket  uint64
	listing *dto.CatalogListing
	err     error
}

type productLoadedMsg struct {
	ticket  uint64
	product *domain.ProductDetail
	err     error
}

type Model struct {
	ctx      context.Context
	catalog  CatalogBrowser
	products ProductLoader
	logger   *zap.Logger

	state         domain.CatalogState
	results       domain.ResultSet
	categories    []string
	subCategories []string
	loadErr       string
	cursor        int

	mode      mode
	search    textinput.Model
	pageInput textinput.Model

	detail detailState

	markdownStyle string
	markdown      *glamour.TermRenderer
	styles        styles
	width         int

	initCmd tea.Cmd
}

type detailState struct {
	ticket   uint64
	sku      string
	loading  bool
	notFound bool
	product  *domain.ProductDetail
	gallery  domain.Gallery
}

func New(ctx context.Context, catalog CatalogBrowser, products ProductLoader, opts Options, logger *zap.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.CharLimit = 200
	search.Width = 40

	pageInput := textinput.New()
	pageInput.CharLimit = 6
	pageInput.Width = 6

	m := Model{
		ctx:           ctx,
		catalog:       catalog,
		products:      products,
		logger:        logger,
		search:        search,
		pageInput:     pageInput,
		markdownStyle: opts.MarkdownStyle,
		styles:        defaultStyles(),
		width:         80,
	}
	m.state.SetSearch(opts.Search)
	m.state.SelectCategory(opts.Category)
	m.markdown = newMarkdownRenderer(m.markdownStyle, m.width)
	m.initCmd = m.fetch()
	return m
}

func newMarkdownRenderer(style string, width int) *glamour.TermRenderer {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStylePath(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	return r
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// fetch starts a product query for the current state. The ticket taken here
// decides whether the response is still wanted when it arrives.
func (m *Model) fetch() tea.Cmd {
	ticket := m.results.Begin()
	ctx, catalog, state := m.ctx, m.catalog, m.state
	return func() tea.Msg {
		listing, err := catalog.Browse(ctx, state)
		return productsLoadedMsg{ticket: ticket, listing: listing, err: err}
	}
}

func (m *Model) openDetail(sku string) tea.Cmd {
	m.detail = detailState{
		ticket:  m.detail.ticket + 1,
		sku:     sku,
		loading: true,
	}
	m.mode = modeDetail
	ticket, ctx, products := m.detail.ticket, m.ctx, m.products
	return func() tea.Msg {
		product, err := products.Load(ctx, sku)
		return productLoadedMsg{ticket: ticket, product: product, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width != m.width {
			m.width = msg.Width
			m.markdown = newMarkdownRenderer(m.markdownStyle, min(m.width-4, 100))
		}
		return m, nil

	case productsLoadedMsg:
		m.applyListing(msg)
		return m, nil

	case productLoadedMsg:
		m.applyProduct(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeGoto:
			return m.updateGoto(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *Model) applyListing(msg productsLoadedMsg) {
	if msg.err != nil {
		if m.results.Fail(msg.ticket) {
			m.logger.Error("failed to load products", zap.Error(msg.err))
			m.loadErr = textUnavailable
		}
		return
	}
	if !m.results.Resolve(msg.ticket, msg.listing.Products, msg.listing.Total) {
		m.logger.Debug("dropped stale product response", zap.Uint64("ticket", msg.ticket))
		return
	}
	m.loadErr = ""
	m.categories = msg.listing.Categories
	m.subCategories = msg.listing.SubCategories
	if m.cursor >= len(m.results.Products) {
		m.cursor = max(len(m.results.Products)-1, 0)
	}
}

func (m *Model) applyProduct(msg productLoadedMsg) {
	if msg.ticket != m.detail.ticket {
		return
	}
	m.detail.loading = false
	if msg.err != nil {
		m.logger.Error("failed to load product", zap.String("sku", m.detail.sku), zap.Error(msg.err))
		m.detail.notFound = true
		return
	}
	m.detail.product = msg.product
	m.detail.gallery.Clamp(len(msg.product.ImageURLs))
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.state.Filter.Search)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd
	case "c":
		if m.state.SelectCategory(cycle(m.categories, m.state.Filter.Category, 1)) {
			m.subCategories = nil
			cmd := m.fetch()
			return m, cmd
		}
	case "C":
		if m.state.SelectCategory(cycle(m.categories, m.state.Filter.Category, -1)) {
			m.subCategories = nil
			cmd := m.fetch()
			return m, cmd
		}
	case "s":
		if m.state.Filter.Category == "" || len(m.subCategories) == 0 {
			return m, nil
		}
		if m.state.SelectSubCategory(cycle(m.subCategories, m.state.Filter.SubCategory, 1)) {
			cmd := m.fetch()
			return m, cmd
		}
	case "x":
		if m.state.ClearFilters() {
			cmd := m.fetch()
			return m, cmd
		}
	case "left", "h":
		if m.state.Previous() {
			cmd := m.fetch()
			return m, cmd
		}
	case "right", "l":
		if m.state.Next(m.results.Total) {
			m.cursor = 0
			cmd := m.fetch()
			return m, cmd
		}
	case "g":
		if len(m.results.Products) == 0 {
			return m, nil
		}
		m.mode = modeGoto
		m.pageInput.SetValue(strconv.Itoa(m.state.Page + 1))
		m.pageInput.CursorEnd()
		cmd := m.pageInput.Focus()
		return m, cmd
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.results.Products)-1 {
			m.cursor++
		}
	case "enter":
		if m.results.Loading || m.cursor >= len(m.results.Products) {
			return m, nil
		}
		cmd := m.openDetail(m.results.Products[m.cursor].StacklineSku)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.search.Blur()
		if m.state.SetSearch(m.search.Value()) {
			m.cursor = 0
			cmd := m.fetch()
			return m, cmd
		}
		return m, nil
	case "esc":
		m.mode = modeList
		m.search.Blur()
		m.search.SetValue(m.state.Filter.Search)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// updateGoto validates the entered page on Enter. Invalid input is replaced
// by the current page number.
func (m Model) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.pageInput.Blur()
		err := m.state.JumpTo(m.pageInput.Value(), m.results.Total)
		if err == nil {
			m.cursor = 0
			cmd := m.fetch()
			return m, cmd
		}
		m.logger.Info("rejected page input", zap.Error(err))
		m.pageInput.SetValue(strconv.Itoa(m.state.Page + 1))
		return m, nil
	case "esc":
		m.mode = modeList
		m.pageInput.Blur()
		m.pageInput.SetValue(strconv.Itoa(m.state.Page + 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.pageInput, cmd = m.pageInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.mode = modeList
		m.detail = detailState{ticket: m.detail.ticket}
		return m, nil
	}

	if m.detail.product == nil {
		return m, nil
	}
	n := len(m.detail.product.ImageURLs)

	switch key {
	case "left", "h":
		m.detail.gallery.Select(m.detail.gallery.Selected-1, n)
	case "right", "l":
		m.detail.gallery.Select(m.detail.gallery.Selected+1, n)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.detail.gallery.Select(int(key[0]-'1'), n)
		}
	}
	return m, nil
}

// cycle returns the option after (or before, for step -1) current, where the
// empty string stands for "All" and sits before the first option.
func cycle(options []string, current string, step int) string {
	all := append([]string{""}, options...)
	idx := 0
	for i, o := range all {
		if o == current {
			idx = i
			break
		}
	}
	next := (idx + step + len(all)) % len(all)
	return all[next]
}
