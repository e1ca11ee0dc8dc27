package domain

// MenuItem is one catalog entry. The menu is read-only during a session;
// Add copies name/price/image/category into the LineItem at add-time.
type MenuItem struct {
	ID          uint64  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	Category    string  `json:"category" gorm:"index;not null"`
	Image       string  `json:"image"`
	Popular     bool    `json:"popular" gorm:"index"`
}
