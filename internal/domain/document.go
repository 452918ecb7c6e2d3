package domain

// Document is a display-only file entry in the document browser.
type Document struct {
	ID   string
	Name string
	Type string // "PDF", "XLS", "IMG", "DOC"
	Size string // display label, e.g. "2.4 MB"
	Date string
}
