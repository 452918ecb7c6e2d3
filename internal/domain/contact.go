package domain

import "strings"

// Contact is a person in the directory, referenced by ID from deals.
type Contact struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Company string
	Role    string
	Avatar  string
}

// Initials returns up to two uppercase initials for avatar rendering.
func (c Contact) Initials() string {
	var out []rune
	for _, field := range strings.Fields(c.Name) {
		out = append(out, []rune(field)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
