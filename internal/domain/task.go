package domain

// Task is a to-do entry. Completed is the only mutable field.
type Task struct {
	ID        string
	Title     string
	DueDate   string // display label, not a parsed date
	Completed bool
	Priority  Priority
	RelatedTo string // optional related-entity label
}
