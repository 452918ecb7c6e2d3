package domain

// Company is a directory entry. Read-only: the UI lists companies but
// never mutates them.
type Company struct {
	ID        string
	Name      string
	Industry  string
	Location  string
	Employees string // bucket label, e.g. "50-200"
	Website   string
	Logo      string
}
