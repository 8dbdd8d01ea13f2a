package catalog

// Filter narrows a catalog listing. Zero values leave a predicate
// inactive; price and rating bounds are inclusive.
type Filter struct {
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

// Matches reports whether the item satisfies every active predicate.
func (f Filter) Matches(i *Item) bool {
	if f.Category != "" && i.Category() != f.Category {
		return false
	}
	if f.Brand != "" && i.Brand() != f.Brand {
		return false
	}
	if f.MinPrice != nil && i.Price() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && i.Price() > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && i.Rating().Rate < *f.MinRating {
		return false
	}
	return true
}

// Apply returns the items that satisfy the filter, preserving order.
func (f Filter) Apply(items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
