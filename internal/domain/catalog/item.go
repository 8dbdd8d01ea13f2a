package catalog

import (
	"fmt"
	"time"
)

// Rating aggregates customer reviews for an item.
type Rating struct {
	Rate  float64
	Count int
}

type Item struct {
	id          string
	title       string
	description string
	category    string
	brand       string
	price       float64
	imageURL    string
	rating      Rating
	createdAt   time.Time
}

func NewItem(
	id string,
	title string,
	description string,
	category string,
	brand string,
	price float64,
	imageURL string,
	rating Rating,
) (*Item, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	return &Item{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		brand:       brand,
		price:       price,
		imageURL:    imageURL,
		rating:      rating,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructItem(
	id string,
	title string,
	description string,
	category string,
	brand string,
	price float64,
	imageURL string,
	rating Rating,
	createdAt time.Time,
) (*Item, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Item{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		brand:       brand,
		price:       price,
		imageURL:    imageURL,
		rating:      rating,
		createdAt:   createdAt,
	}, nil
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) Title() string {
	return i.title
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) Brand() string {
	return i.brand
}

func (i *Item) Price() float64 {
	return i.price
}

func (i *Item) ImageURL() string {
	return i.imageURL
}

func (i *Item) Rating() Rating {
	return i.rating
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}
