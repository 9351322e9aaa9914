package browser

import (
	"fmt"
	"strings"

	"stackshop/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.mode == modeDetail {
		return m.detailView()
	}
	return m.catalogView()
}

func (m Model) catalogView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("StackShop"))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	switch {
	case m.results.Loading:
		b.WriteString(m.styles.Muted.Render(textLoading))
	case m.loadErr != "":
		b.WriteString(m.styles.Error.Render(m.loadErr))
	case m.results.Empty():
		b.WriteString(m.styles.Muted.Render(textEmpty))
	default:
		b.WriteString(m.productList())
		b.WriteString("\n")
		b.WriteString(m.pager())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m Model) filterLine() string {
	f := m.state.Filter

	search := f.Search
	if m.mode == modeSearch {
		search = m.search.View()
	} else if search == "" {
		search = m.styles.Muted.Render("Search products...")
	}

	category := f.Category
	if category == "" {
		category = "All Categories"
	}

	parts := []string{
		"Search: " + search,
		"Category: " + category,
	}
	if f.Category != "" && len(m.subCategories) > 0 {
		sub := f.SubCategory
		if sub == "" {
			sub = "All Subcategories"
		}
		parts = append(parts, "Subcategory: "+sub)
	}
	if f.Active() {
		parts = append(parts, m.styles.Muted.Render("[x] Clear Filters"))
	}
	return strings.Join(parts, "   ")
}

func (m Model) productList() string {
	p := m.state.Pagination(m.results.Total)
	first, last := p.Range(len(m.results.Products))

	lines := []string{
		m.styles.Muted.Render(fmt.Sprintf("Showing %d-%d of %d products", first, last, m.results.Total)),
		"",
	}
	for i, product := range m.results.Products {
		line := fmt.Sprintf("%s  %s", product.Title, m.badges(product.CategoryName, product.SubCategoryName))
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) pager() string {
	p := m.state.Pagination(m.results.Total)

	prev := "← Previous"
	if !p.HasPrevious() {
		prev = m.styles.Disabled.Render(prev)
	}
	next := "Next →"
	if !p.HasNext() {
		next = m.styles.Disabled.Render(next)
	}

	page := fmt.Sprintf("%d", m.state.Page+1)
	if m.mode == modeGoto {
		page = m.pageInput.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		prev, "   ", page, fmt.Sprintf(" / %d", p.TotalPages()), "   ", next,
	)
}

func (m Model) help() string {
	switch m.mode {
	case modeSearch:
		return "enter apply • esc cancel"
	case modeGoto:
		return "enter go to page • esc cancel"
	}
	return "/ search • c/C category • s subcategory • x clear • ←/→ page • g go to page • ↑/↓ move • enter details • q quit"
}

func (m Model) badges(category, subCategory string) string {
	var out []string
	for _, v := range []string{category, subCategory} {
		if v != "" {
			out = append(out, m.styles.Badge.Render(v))
		}
	}
	return strings.Join(out, " ")
}

func (m Model) detailView() string {
	var b strings.Builder
	b.WriteString(m.styles.Muted.Render("← Back to Products (esc)"))
	b.WriteString("\n\n")

	d := m.detail
	switch {
	case d.loading:
		b.WriteString(m.styles.Muted.Render("Loading product..."))
		return b.String()
	case d.notFound || d.product == nil:
		b.WriteString(m.styles.Muted.Render(textNotFound))
		return b.String()
	}

	product := d.product
	b.WriteString(m.badges(product.CategoryName, product.SubCategoryName))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(product.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("SKU: " + product.RetailerSku))
	b.WriteString("\n\n")

	if image := d.gallery.Current(product.ImageURLs); image != "" {
		b.WriteString(fmt.Sprintf("Image %d/%d: %s\n", d.gallery.Selected+1, len(product.ImageURLs), image))
	}
	if product.HasGallery() {
		b.WriteString(m.thumbnails(product, d.gallery))
		b.WriteString("\n")
	}

	if len(product.FeatureBullets) > 0 {
		b.WriteString("\n")
		b.WriteString(m.features(product.FeatureBullets))
	}

	b.WriteString(m.styles.Help.Render("←/→ or 1-9 image • esc back • q quit"))
	return b.String()
}

func (m Model) thumbnails(product *domain.ProductDetail, gallery domain.Gallery) string {
	cells := make([]string, 0, len(product.ImageURLs))
	for i := range product.ImageURLs {
		label := fmt.Sprintf("[%d]", i+1)
		if i == gallery.Selected {
			label = m.styles.Selected.Render(fmt.Sprintf("[%d*]", i+1))
		}
		cells = append(cells, label)
	}
	return strings.Join(cells, " ")
}

func (m Model) features(bullets []string) string {
	var md strings.Builder
	md.WriteString("## Features\n\n")
	for _, bullet := range bullets {
		md.WriteString("- " + bullet + "\n")
	}

	if m.markdown != nil {
		if out, err := m.markdown.Render(md.String()); err == nil {
			return out
		}
	}
	return md.String()
}
