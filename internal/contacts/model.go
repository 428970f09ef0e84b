package contacts

import "time"

// Contact is a person the user wants to break the ice with.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	MetAt     string    `json:"metAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
