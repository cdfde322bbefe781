package models

// Theme is a named category posts are published under.
// Themes are read-only from the API's perspective; they are seeded by
// migrations.
type Theme struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Theme model.
func (t Theme) TableName() string {
	return "themes"
}
