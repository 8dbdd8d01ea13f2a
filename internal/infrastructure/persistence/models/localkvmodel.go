package models

// LocalKVModel backs the client-side key-value store. It plays the role
// browser localStorage played in the original front ends.
type LocalKVModel struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LocalKVModel) TableName() string {
	return "local_kv"
}
