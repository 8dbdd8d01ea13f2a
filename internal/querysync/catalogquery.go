package querysync

import (
	"strconv"

	"deskline/internal/shared/constants"
)

// CatalogQuery is the item list's filter and pagination state. Numeric
// range fields are pointers; nil means the bound is not set.
type CatalogQuery struct {
	Page      int
	Limit     int
	Q         string
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

func DefaultCatalogQuery() CatalogQuery {
	return CatalogQuery{
		Page:  constants.DefaultPage,
		Limit: constants.DefaultLimit,
	}
}

// Equal reports structural equality, comparing range bounds by value.
func (q CatalogQuery) Equal(other CatalogQuery) bool {
	return q.Page == other.Page &&
		q.Limit == other.Limit &&
		q.Q == other.Q &&
		q.Category == other.Category &&
		q.Brand == other.Brand &&
		floatPtrEqual(q.MinPrice, other.MinPrice) &&
		floatPtrEqual(q.MaxPrice, other.MaxPrice) &&
		floatPtrEqual(q.MinRating, other.MinRating)
}

// Encode renders the query as flat string parameters, omitting defaults
// and unset bounds.
func (q CatalogQuery) Encode() map[string]string {
	def := DefaultCatalogQuery()
	params := make(map[string]string)

	if q.Page != def.Page {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit != def.Limit {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Q != "" {
		params["q"] = q.Q
	}
	if q.Category != "" {
		params["category"] = q.Category
	}
	if q.Brand != "" {
		params["brand"] = q.Brand
	}
	if q.MinPrice != nil {
		params["minPrice"] = formatFloat(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		params["maxPrice"] = formatFloat(*q.MaxPrice)
	}
	if q.MinRating != nil {
		params["minRating"] = formatFloat(*q.MinRating)
	}

	return params
}

// DecodeCatalogQuery rebuilds the state from flat parameters. Malformed
// integers fall back to defaults and malformed numeric bounds decode to
// unset; decoding never fails.
func DecodeCatalogQuery(params map[string]string) CatalogQuery {
	q := DefaultCatalogQuery()

	q.Page = decodePositiveInt(params["page"], q.Page)
	q.Limit = decodePositiveInt(params["limit"], q.Limit)

	if v, ok := params["q"]; ok {
		q.Q = v
	}
	if v, ok := params["category"]; ok {
		q.Category = v
	}
	if v, ok := params["brand"]; ok {
		q.Brand = v
	}
	q.MinPrice = decodeFloat(params["minPrice"])
	q.MaxPrice = decodeFloat(params["maxPrice"])
	q.MinRating = decodeFloat(params["minRating"])

	return q
}

func decodeFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
