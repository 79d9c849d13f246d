package domain

// Destination is read-only reference data seeded once at startup.
type Destination struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:name;type:text;uniqueIndex;not null" json:"name"`
	Country     string  `gorm:"column:country;type:text;not null" json:"country"`
	AvgBudget   float64 `gorm:"column:avg_budget;not null" json:"avg_budget"`
	AvgRating   float64 `gorm:"column:avg_rating;not null" json:"avg_rating"`
	Popularity  int     `gorm:"column:popularity;default:0" json:"popularity"`
	Description string  `gorm:"column:description;type:text" json:"description"`
}

func (Destination) TableName() string {
	return "destinations"
}
