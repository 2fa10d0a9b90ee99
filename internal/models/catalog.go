package models

// ServiceCategory groups providers under a home-service discipline
// (plumbing, electrical, ...). Icon and Color are presentation tokens
// interpreted by the front end.
type ServiceCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Icon        string `gorm:"not null" json:"icon"`
	Color       string `gorm:"not null" json:"color"`
}

// ServiceProvider is a bookable business listed under one category.
// Rating is stored in tenths (49 means 4.9 stars).
type ServiceProvider struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"not null" json:"description"`
	ImageURL     string `json:"imageUrl,omitempty"`
	CategoryID   uint   `gorm:"not null;index" json:"categoryId"`
	Rating       int    `json:"rating"`
	IsVerified   bool   `gorm:"default:false" json:"isVerified"`
	ResponseTime string `json:"responseTime,omitempty"`
	BadgeOne     string `json:"badgeOne,omitempty"`
	BadgeTwo     string `json:"badgeTwo,omitempty"`
	DailyRate    string `gorm:"type:decimal(10,2)" json:"dailyRate,omitempty"`
}
