package models

// Condition shares the shape of Category but lives in its own namespace:
// "Новое" as a condition and "Новое" as a category are unrelated rows.
type Condition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
