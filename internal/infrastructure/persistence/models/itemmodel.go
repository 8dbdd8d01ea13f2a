package models

type ItemModel struct {
	ID          string  `gorm:"primaryKey;size:64"`
	Title       string  `gorm:"size:200;not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"size:80;index"`
	Brand       string  `gorm:"size:80;index"`
	Price       float64 `gorm:"not null"`
	ImageURL    string  `gorm:"size:500"`
	RatingRate  float64 `gorm:"not null;default:0"`
	RatingCount int     `gorm:"not null;default:0"`
	CreatedAt   int64   `gorm:"not null"`
}

func (ItemModel) TableName() string {
	return "items"
}
