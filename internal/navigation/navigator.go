// Package navigation decides where a client app should be sent given its
// session state and current location, and which screens a profile gets.
package navigation

import (
	"strings"

	"printshop-backend/internal/models"
)

const (
	RootPath    = "/"
	AuthSegment = "(auth)"
	SignInPath  = "/(auth)/signin"
	SignUpPath  = "/(auth)/signup"
)

type Screen struct {
	Name  string
	Path  string
	Title string
}

var (
	adminScreens = []Screen{
		{Name: "pending", Path: "/(tabs)/pending", Title: "Pedidos pendientes"},
		{Name: "assigned", Path: "/(tabs)/assigned", Title: "Mis pedidos asignados"},
		{Name: "history", Path: "/(tabs)/history", Title: "Historial"},
	}
	clientScreens = []Screen{
		{Name: "create-order", Path: "/(tabs)/create-order", Title: "Nuevo pedido"},
		{Name: "my-orders", Path: "/(tabs)/my-orders", Title: "Mis pedidos"},
	}
)

// InAuthArea reports whether the first path segment of location is the
// auth group.
func InAuthArea(location string) bool {
	location = strings.TrimLeft(location, "/")
	first, _, _ := strings.Cut(location, "/")
	if i := strings.IndexAny(first, "?#"); i >= 0 {
		first = first[:i]
	}
	return first == AuthSegment
}

// Redirect returns the location to move to, or "" to stay.
func Redirect(authenticated bool, location string) string {
	inAuth := InAuthArea(location)
	switch {
	case authenticated && inAuth:
		return RootPath
	case !authenticated && !inAuth:
		return SignInPath
	}
	return ""
}

// Screens lists the tabs for a profile. Anything that is not an
// administrator, including a missing profile, gets the client tabs.
func Screens(profile *models.Profile) []Screen {
	src := clientScreens
	if profile.IsAdmin() {
		src = adminScreens
	}
	out := make([]Screen, len(src))
	copy(out, src)
	return out
}
