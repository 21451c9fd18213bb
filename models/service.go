package models

// Service represents a bookable salon service. Duration is a free-form
// human string ("45 min", "1.5 Std") parsed by the booking engine.
type Service struct {
	ID       string  `bson:"id" json:"id"`
	NameDE   string  `bson:"name_de" json:"name_de"`
	NameEN   string  `bson:"name_en" json:"name_en"`
	Duration string  `bson:"duration" json:"duration"`
	Price    float64 `bson:"price" json:"price"`
	Category string  `bson:"category,omitempty" json:"category,omitempty"`
	Active   bool    `bson:"active" json:"active"`
}
