package domain

// Gallery tracks the selected image on the detail page.
type Gallery struct {
	Selected int
}

// Select sets the index when it addresses one of n images.
func (g *Gallery) Select(k, n int) bool {
	if k < 0 || k >= n {
		return false
	}
	g.Selected = k
	return true
}

// Clamp keeps the index inside a freshly loaded image list of length n.
func (g *Gallery) Clamp(n int) {
	if g.Selected >= n {
		g.Selected = n - 1
	}
	if g.Selected < 0 {
		g.Selected = 0
	}
}

func (g Gallery) Current(urls []string) string {
	if g.Selected < 0 || g.Selected >= len(urls) {
		return ""
	}
	return urls[g.Selected]
}
