package main

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Category is the closed set of project categories used across the site.
type Category string

const (
	CategoryWebApp       Category = "Web App"
	CategoryEcommerce    Category = "E-commerce"
	CategoryLanding      Category = "Landing"
	CategoryDesignSystem Category = "Design System"
)

var knownCategories = []Category{CategoryWebApp, CategoryEcommerce, CategoryLanding, CategoryDesignSystem}

// CategoryStyle maps a category to its display descriptor (icon name + accent
// color used by the templates). Plain lookup table, no dispatch.
type CategoryStyle struct {
	Icon  string
	Color string
}

var categoryStyles = map[Category]CategoryStyle{
	CategoryWebApp:       {Icon: "layout-dashboard", Color: "blue"},
	CategoryEcommerce:    {Icon: "shopping-bag", Color: "emerald"},
	CategoryLanding:      {Icon: "rocket", Color: "purple"},
	CategoryDesignSystem: {Icon: "palette", Color: "cyan"},
}

// Style returns the display descriptor for the category, with a neutral
// fallback so an unknown value never breaks rendering.
func (c Category) Style() CategoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return CategoryStyle{Icon: "folder", Color: "slate"}
}

type ProjectImage struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// ProjectRecord is one entry of the static catalog. Records are immutable for
// the process lifetime; everything the site shows is derived from them.
type ProjectRecord struct {
	ID       string         `yaml:"id"`
	Title    string         `yaml:"title"`
	Slug     string         `yaml:"slug"`
	Year     int            `yaml:"year"`
	Category Category       `yaml:"category"`
	Stack    []string       `yaml:"stack"`
	Summary  string         `yaml:"summary"`
	Goals    []string       `yaml:"goals"`
	Process  []string       `yaml:"process"`
	Results  []string       `yaml:"results"`
	Images   []ProjectImage `yaml:"images"`
	RepoURL  string         `yaml:"repoUrl"`
	DemoURL  string         `yaml:"demoUrl"`
}

// Cover is the image used in list views (first image by convention).
func (p ProjectRecord) Cover() ProjectImage {
	if len(p.Images) == 0 {
		return ProjectImage{}
	}
	return p.Images[0]
}

type Testimonial struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Quote  string `yaml:"quote"`
	Avatar string `yaml:"avatar"`
}

// Catalog holds the site's static content, loaded once at startup.
type Catalog struct {
	Projects     []ProjectRecord `yaml:"projects"`
	Testimonials []Testimonial   `yaml:"testimonials"`
}

//go:embed data/catalog.yaml
var catalogYAML []byte

// loadCatalog parses and validates the catalog. Slug and id uniqueness are
// enforced here so that detail routes can never resolve ambiguously at runtime.
func loadCatalog(raw []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	slugs := make(map[string]bool, len(cat.Projects))
	ids := make(map[string]bool, len(cat.Projects))
	for _, p := range cat.Projects {
		if p.ID == "" || p.Slug == "" || p.Title == "" {
			return nil, fmt.Errorf("project %q: id, slug and title are required", p.Title)
		}
		if p.Year <= 0 {
			return nil, fmt.Errorf("project %q: invalid year %d", p.Slug, p.Year)
		}
		if !slices.Contains(knownCategories, p.Category) {
			return nil, fmt.Errorf("project %q: unknown category %q", p.Slug, p.Category)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("duplicate project id %q", p.ID)
		}
		if slugs[p.Slug] {
			return nil, fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
	}
	return &cat, nil
}

// BySlug resolves a detail route's slug against the catalog.
func (c *Catalog) BySlug(slug string) (ProjectRecord, bool) {
	for _, p := range c.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return ProjectRecord{}, false
}

// Facet option enumeration. Options always come from the full catalog, never
// from a filtered subset, so the filter UI stays complete even when the
// current result set is empty. Order is first appearance in the catalog.

func (c *Catalog) Categories() []string {
	var out []string
	for _, p := range c.Projects {
		if !slices.Contains(out, string(p.Category)) {
			out = append(out, string(p.Category))
		}
	}
	return out
}

func (c *Catalog) Years() []int {
	var out []int
	for _, p := range c.Projects {
		if !slices.Contains(out, p.Year) {
			out = append(out, p.Year)
		}
	}
	return out
}

func (c *Catalog) Stacks() []string {
	var out []string
	for _, p := range c.Projects {
		for _, s := range p.Stack {
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
	}
	return out
}

// Featured returns the n most recent projects for the home page strip,
// tie-broken by catalog order.
func (c *Catalog) Featured(n int) []ProjectRecord {
	out := slices.Clone(c.Projects)
	slices.SortStableFunc(out, func(a, b ProjectRecord) int {
		return b.Year - a.Year
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
