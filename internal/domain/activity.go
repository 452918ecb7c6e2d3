package domain

// Activity is a display-only feed entry on the dashboard.
type Activity struct {
	ID          string
	Type        ActivityType
	Description string
	Date        string
}
