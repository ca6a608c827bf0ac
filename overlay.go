package main

import (
	"net/url"
	"strings"
)

// The project detail route renders two ways: as a modal overlay above the
// page the visitor navigated from (filters intact underneath), or as a full
// standalone page when the URL was opened directly. Which one is decided by
// an explicit background-route marker carried on the navigation itself:
// in-app listing links attach their current URL as the `from` query
// parameter, and HTMX requests carry it in the HX-Current-URL header. No
// marker means direct entry.

type NavigationContext struct {
	CurrentRoute    string
	BackgroundRoute string // empty when the detail route was entered directly
}

// buildNavigationContext derives the per-request context. fromParam wins over
// the HTMX header since it is the explicit marker; both are sanitized to
// same-site paths before use.
func buildNavigationContext(current, fromParam, hxCurrentURL string) NavigationContext {
	bg := sanitizeBackgroundRoute(fromParam)
	if bg == "" {
		bg = sanitizeBackgroundRoute(hxCurrentURL)
	}
	return NavigationContext{CurrentRoute: current, BackgroundRoute: bg}
}

// Overlaid reports whether the detail view renders as a modal above a
// retained background route.
func (n NavigationContext) Overlaid() bool {
	return n.BackgroundRoute != ""
}

// DismissTarget is where every close action (button, Escape, backdrop click)
// navigates to: the background route verbatim when overlaid, so a filtered
// listing keeps its query string, or the listing root for standalone entry.
func (n NavigationContext) DismissTarget() string {
	if n.BackgroundRoute != "" {
		return n.BackgroundRoute
	}
	return "/projects"
}

// sanitizeBackgroundRoute reduces a marker to a same-site path with query.
// Absolute URLs (HX-Current-URL is one) are stripped to path+query, which
// also neutralizes off-site markers; protocol-relative and opaque values are
// rejected outright.
func sanitizeBackgroundRoute(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	// Protocol-relative markers keep their host after parsing; never follow
	// those.
	if u.Scheme == "" && u.Host != "" {
		return ""
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return ""
	}
	if u.RawQuery != "" {
		return path + "?" + u.RawQuery
	}
	return path
}
