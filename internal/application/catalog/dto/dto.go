package dto

import "deskline/internal/domain/catalog"

type RatingDTO struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type ItemDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Rating      RatingDTO `json:"rating"`
}

func ToItemDTO(i *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID(),
		Title:       i.Title(),
		Description: i.Description(),
		Category:    i.Category(),
		Brand:       i.Brand(),
		Price:       i.Price(),
		Image:       i.ImageURL(),
		Rating: RatingDTO{
			Rate:  i.Rating().Rate,
			Count: i.Rating().Count,
		},
	}
}

func ToItemDTOs(items []*catalog.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, ToItemDTO(i))
	}
	return out
}
