package interaction

// CategoryOther is assigned to clips whose author never picked a category.
const CategoryOther = "Khác"

// Clip is a single recorded video segment answering one scripted question
// within a story. VideoRef is an opaque locator; the engine never fetches it,
// it only compares refs to detect "same clip as the one playing". Duplicate
// refs inside one story are tolerated.
type Clip struct {
	Question string `json:"question"`
	Category string `json:"category"`
	VideoRef string `json:"video_ref"`
}

// Normalize fills defaults the upstream catalog may omit.
func (c Clip) Normalize() Clip {
	if c.Category == "" {
		c.Category = CategoryOther
	}
	return c
}

// GroupByCategory buckets clips for the hint list, preserving clip order
// inside each bucket and the order in which categories first appear.
func GroupByCategory(clips []Clip) ([]string, map[string][]Clip) {
	order := make([]string, 0)
	groups := make(map[string][]Clip)
	for _, c := range clips {
		c = c.Normalize()
		if _, ok := groups[c.Category]; !ok {
			order = append(order, c.Category)
		}
		groups[c.Category] = append(groups[c.Category], c)
	}
	return order, groups
}
