package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat := testCatalog(t)
	require.Len(t, cat.Projects, 5)
	require.Len(t, cat.Testimonials, 2)

	p, ok := cat.BySlug("dashboard-analytics")
	require.True(t, ok)
	require.Equal(t, "Dashboard Analytics", p.Title)
	require.Equal(t, CategoryWebApp, p.Category)
	require.Equal(t, "Dashboard overview", p.Cover().Alt)

	_, ok = cat.BySlug("does-not-exist")
	require.False(t, ok)
}

func TestDuplicateSlugRejected(t *testing.T) {
	raw := []byte(`
projects:
  - {id: a, title: One, slug: same, year: 2024, category: Landing}
  - {id: b, title: Two, slug: same, year: 2023, category: Landing}
`)
	_, err := loadCatalog(raw)
	require.ErrorContains(t, err, "duplicate project slug")
}

func TestDuplicateIDRejected(t *testing.T) {
	raw := []byte(`
projects:
  - {id: a, title: One, slug: one, year: 2024, category: Landing}
  - {id: a, title: Two, slug: two, year: 2023, category: Landing}
`)
	_, err := loadCatalog(raw)
	require.ErrorContains(t, err, "duplicate project id")
}

func TestUnknownCategoryRejected(t *testing.T) {
	raw := []byte(`
projects:
  - {id: a, title: One, slug: one, year: 2024, category: Blog}
`)
	_, err := loadCatalog(raw)
	require.ErrorContains(t, err, "unknown category")
}

func TestMissingFieldsRejected(t *testing.T) {
	raw := []byte(`
projects:
  - {id: a, title: "", slug: one, year: 2024, category: Landing}
`)
	_, err := loadCatalog(raw)
	require.Error(t, err)
}

func TestFacetOptionsComeFromFullCatalog(t *testing.T) {
	cat := testCatalog(t)

	require.Equal(t, []string{"Web App", "E-commerce", "Landing", "Design System"}, cat.Categories())
	require.Equal(t, []int{2024, 2023, 2025, 2022, 2021}, cat.Years())

	stacks := cat.Stacks()
	require.Equal(t, "React", stacks[0])
	require.Contains(t, stacks, "TS")
	require.Contains(t, stacks, "Bootstrap")
	require.Contains(t, stacks, "Next JS")

	// No duplicates even though several projects share technologies.
	seen := map[string]bool{}
	for _, s := range stacks {
		require.False(t, seen[s], "duplicate stack option %q", s)
		seen[s] = true
	}
}

func TestFeaturedPicksMostRecent(t *testing.T) {
	cat := testCatalog(t)
	got := cat.Featured(3)
	require.Equal(t, []string{"landing-campagna", "dashboard-analytics", "ecommerce-sneakers"}, slugsOf(got))

	// Asking for more than exists returns the full catalog, most recent first.
	require.Len(t, cat.Featured(10), 5)
}

func TestCategoryStyleFallback(t *testing.T) {
	require.Equal(t, "layout-dashboard", CategoryWebApp.Style().Icon)
	require.Equal(t, "folder", Category("Blog").Style().Icon)
}
