package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"printshop-backend/internal/models"
	"printshop-backend/internal/navigation"
)

func TestInAuthArea(t *testing.T) {
	assert.True(t, navigation.InAuthArea("/(auth)/signin"))
	assert.True(t, navigation.InAuthArea("(auth)/signup"))
	assert.True(t, navigation.InAuthArea("/(auth)"))
	assert.False(t, navigation.InAuthArea("/"))
	assert.False(t, navigation.InAuthArea("/(tabs)/my-orders"))
	assert.False(t, navigation.InAuthArea("/settings/(auth)"))
}

func TestRedirect(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		location      string
		want          string
	}{
		{"guest on protected route", false, "/(tabs)/pending", navigation.SignInPath},
		{"guest on root", false, "/", navigation.SignInPath},
		{"guest on sign in", false, "/(auth)/signin", ""},
		{"guest on sign up", false, "/(auth)/signup", ""},
		{"signed in on sign in", true, "/(auth)/signin", navigation.RootPath},
		{"signed in on tabs", true, "/(tabs)/my-orders", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, navigation.Redirect(tt.authenticated, tt.location))
		})
	}
}

func screenNames(screens []navigation.Screen) []string {
	names := make([]string, 0, len(screens))
	for _, s := range screens {
		names = append(names, s.Name)
	}
	return names
}

func TestScreens(t *testing.T) {
	admin := &models.Profile{Role: models.RoleAdmin}
	client := &models.Profile{Role: models.RoleClient}
	noRole := &models.Profile{}

	assert.Equal(t, []string{"pending", "assigned", "history"}, screenNames(navigation.Screens(admin)))
	assert.Equal(t, []string{"create-order", "my-orders"}, screenNames(navigation.Screens(client)))
	assert.Equal(t, []string{"create-order", "my-orders"}, screenNames(navigation.Screens(noRole)))
	assert.Equal(t, []string{"create-order", "my-orders"}, screenNames(navigation.Screens(nil)))
}

func TestScreensReturnsCopy(t *testing.T) {
	screens := navigation.Screens(nil)
	screens[0].Name = "changed"
	assert.Equal(t, "create-order", navigation.Screens(nil)[0].Name)
}
