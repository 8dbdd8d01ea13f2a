package storefront

import (
	"context"
	"strings"

	"deskline/internal/client/api"
	"deskline/internal/querysync"
)

// ItemLister fetches the full catalog.
type ItemLister interface {
	ListItems(ctx context.Context) ([]api.Item, error)
}

// ItemListService pages and filters the catalog on the client side. The
// whole collection is fetched once and every query change is answered
// from memory: conjunctive filters first, then pagination. When the
// current page falls beyond the filtered collection the pager resets to
// page 1 and the service mirrors that reset into its query state so
// encoded params stay consistent with what is displayed.
type ItemListService struct {
	lister ItemLister

	items []api.Item
	query querysync.CatalogQuery
}

func NewItemListService(lister ItemLister) *ItemListService {
	return &ItemListService{
		lister: lister,
		query:  querysync.DefaultCatalogQuery(),
	}
}

// Load fetches the catalog. It must be called before SetQuery.
func (s *ItemListService) Load(ctx context.Context) error {
	items, err := s.lister.ListItems(ctx)
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

// SetQuery applies a new filter and pagination state and returns the
// resulting page.
func (s *ItemListService) SetQuery(query querysync.CatalogQuery) querysync.Page[api.Item] {
	filtered := querysync.Filter(s.items, func(item api.Item) bool {
		return matchesItem(query, item)
	})

	page := querysync.Paginate(filtered, query.Page, query.Limit)
	if page.Reset {
		query.Page = page.Page
	}
	s.query = query

	return page
}

// SetFromParams decodes flat string parameters and applies them.
func (s *ItemListService) SetFromParams(params map[string]string) querysync.Page[api.Item] {
	return s.SetQuery(querysync.DecodeCatalogQuery(params))
}

// Query returns the current query state.
func (s *ItemListService) Query() querysync.CatalogQuery {
	return s.query
}

// Params encodes the current query state for the address bar.
func (s *ItemListService) Params() map[string]string {
	return s.query.Encode()
}

// matchesItem applies the filters conjunctively. Range bounds are
// inclusive; an unset bound always passes.
func matchesItem(q querysync.CatalogQuery, item api.Item) bool {
	if q.Category != "" && item.Category != q.Category {
		return false
	}
	if q.Brand != "" && item.Brand != q.Brand {
		return false
	}
	if q.MinPrice != nil && item.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && item.Price > *q.MaxPrice {
		return false
	}
	if q.MinRating != nil && item.Rating.Rate < *q.MinRating {
		return false
	}
	if q.Q != "" {
		needle := strings.ToLower(q.Q)
		if !strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	return true
}
