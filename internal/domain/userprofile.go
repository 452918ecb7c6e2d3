package domain

// UserProfile is the singleton account profile edited via settings.
type UserProfile struct {
	FirstName string
	LastName  string
	Email     string
}

// ProfileField names an editable profile attribute.
type ProfileField string

const (
	FieldFirstName ProfileField = "firstName"
	FieldLastName  ProfileField = "lastName"
	FieldEmail     ProfileField = "email"
)

// Initials returns the two-letter monogram shown in the sidebar.
func (p UserProfile) Initials() string {
	var out []rune
	if p.FirstName != "" {
		out = append(out, []rune(p.FirstName)[0])
	}
	if p.LastName != "" {
		out = append(out, []rune(p.LastName)[0])
	}
	return string(out)
}
