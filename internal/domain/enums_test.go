package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageShortLabel(t *testing.T) {
	assert.Equal(t, "Discovery", StageDiscovery.ShortLabel())
	assert.Equal(t, "Closed", StageClosedWon.ShortLabel())
	assert.Equal(t, "Closed", StageClosedLost.ShortLabel())
	assert.Equal(t, "", DealStage("").ShortLabel())
}

func TestStageValid(t *testing.T) {
	for _, s := range StageOrder {
		assert.True(t, s.Valid(), "stage %q", s)
	}
	assert.False(t, DealStage("Onboarding").Valid())
	assert.False(t, DealStage("").Valid())
}

func TestContactInitials(t *testing.T) {
	assert.Equal(t, "JD", Contact{Name: "Jane Doe"}.Initials())
	assert.Equal(t, "M", Contact{Name: "Madonna"}.Initials())
	assert.Equal(t, "AB", Contact{Name: "alice bell carter"}.Initials())
	assert.Equal(t, "", Contact{}.Initials())
}

func TestProfileInitials(t *testing.T) {
	p := UserProfile{FirstName: "Matthew", LastName: "Parker"}
	assert.Equal(t, "MP", p.Initials())
	assert.Equal(t, "M", UserProfile{FirstName: "Matthew"}.Initials())
}
