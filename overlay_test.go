package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlaidWithBackgroundMarker(t *testing.T) {
	nav := buildNavigationContext("/projects/dashboard-analytics", "/projects?category=Web+App&mode=OR", "")
	require.True(t, nav.Overlaid())
	// Dismissal restores the background route verbatim, filters included.
	require.Equal(t, "/projects?category=Web+App&mode=OR", nav.DismissTarget())
}

func TestStandaloneOnDirectEntry(t *testing.T) {
	nav := buildNavigationContext("/projects/dashboard-analytics", "", "")
	require.False(t, nav.Overlaid())
	require.Equal(t, "/projects", nav.DismissTarget())
}

func TestHTMXHeaderCarriesBackgroundRoute(t *testing.T) {
	nav := buildNavigationContext("/projects/App", "", "http://localhost:8080/projects?year=2021")
	require.True(t, nav.Overlaid())
	require.Equal(t, "/projects?year=2021", nav.DismissTarget())
}

func TestExplicitMarkerWinsOverHeader(t *testing.T) {
	nav := buildNavigationContext("/projects/App", "/projects?stack=TS", "http://localhost:8080/")
	require.Equal(t, "/projects?stack=TS", nav.BackgroundRoute)
}

func TestOffsiteMarkersAreNeutralized(t *testing.T) {
	// Absolute URLs reduce to their same-site path; the host never survives.
	nav := buildNavigationContext("/projects/App", "https://evil.example/projects?x=1", "")
	require.Equal(t, "/projects?x=1", nav.BackgroundRoute)

	// Protocol-relative and opaque values are rejected outright.
	for _, raw := range []string{"//evil.example/phish", "javascript:alert(1)", "projects", "%zz"} {
		nav := buildNavigationContext("/projects/App", raw, "")
		require.False(t, nav.Overlaid(), "marker %q must not produce an overlay", raw)
		require.Equal(t, "/projects", nav.DismissTarget())
	}
}
