package models

// Artist represents a staff member performing services. Schedules are
// independent per artist.
type Artist struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`
	PhotoURL    string   `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Active      bool     `bson:"active" json:"active"`
}
