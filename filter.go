package main

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// FacetAll is the sentinel meaning "facet not active".
const FacetAll = "All"

type CombineMode string

const (
	ModeAND CombineMode = "AND"
	ModeOR  CombineMode = "OR"
)

type SortKey string

const (
	SortDate     SortKey = "date"
	SortName     SortKey = "name"
	SortCategory SortKey = "category"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// FilterState is the full filter/sort/search state of the projects listing.
// It round-trips to the listing URL's query string: every state reachable
// through the UI is shareable, and any query string parses to a deterministic
// state (malformed values fall back to defaults, never error).
//
// Year uses 0 as the "All" sentinel since no catalog year can be zero.
type FilterState struct {
	Category  string
	Year      int
	Stack     string
	Mode      CombineMode
	Search    string
	SortKey   SortKey
	SortOrder SortOrder
}

func defaultFilterState() FilterState {
	return FilterState{
		Category:  FacetAll,
		Year:      0,
		Stack:     FacetAll,
		Mode:      ModeAND,
		SortKey:   SortDate,
		SortOrder: OrderDesc,
	}
}

// SetFacet updates one facet. Values are not checked against the catalog: a
// value no catalog entry carries is a valid "matches nothing" filter, which is
// how crafted URLs stay harmless. A non-numeric year resets that facet to All.
func (f *FilterState) SetFacet(name, value string) {
	switch name {
	case "category":
		if value == "" {
			value = FacetAll
		}
		f.Category = value
	case "year":
		y, err := strconv.Atoi(value)
		if err != nil {
			y = 0
		}
		f.Year = y
	case "stack":
		if value == "" {
			value = FacetAll
		}
		f.Stack = value
	}
}

func (f *FilterState) SetCombineMode(mode CombineMode) {
	if mode != ModeOR {
		mode = ModeAND
	}
	f.Mode = mode
}

func (f *FilterState) SetSearchText(text string) {
	f.Search = text
}

func (f *FilterState) SetSort(key SortKey, order SortOrder) {
	switch key {
	case SortDate, SortName, SortCategory:
	default:
		key = SortDate
	}
	if order != OrderAsc {
		order = OrderDesc
	}
	f.SortKey = key
	f.SortOrder = order
}

// Reset returns the state to defaults, clearing the query string.
func (f *FilterState) Reset() {
	*f = defaultFilterState()
}

// parseFilterState hydrates a FilterState from an incoming query string.
func parseFilterState(q url.Values) FilterState {
	f := defaultFilterState()
	if v := q.Get("category"); v != "" {
		f.SetFacet("category", v)
	}
	if v := q.Get("year"); v != "" {
		f.SetFacet("year", v)
	}
	if v := q.Get("stack"); v != "" {
		f.SetFacet("stack", v)
	}
	if v := q.Get("mode"); v != "" {
		f.SetCombineMode(CombineMode(v))
	}
	f.SetSearchText(q.Get("q"))
	key, order := f.SortKey, f.SortOrder
	if v := q.Get("sort"); v != "" {
		key = SortKey(v)
	}
	if v := q.Get("order"); v != "" {
		order = SortOrder(v)
	}
	f.SetSort(key, order)
	return f
}

// Encode serializes the state back to query parameters. Defaults are omitted
// so the unfiltered listing keeps a clean URL.
func (f FilterState) Encode() url.Values {
	q := url.Values{}
	if f.Category != FacetAll {
		q.Set("category", f.Category)
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if f.Stack != FacetAll {
		q.Set("stack", f.Stack)
	}
	if f.Mode != ModeAND {
		q.Set("mode", string(f.Mode))
	}
	if f.Search != "" {
		q.Set("q", f.Search)
	}
	if f.SortKey != SortDate {
		q.Set("sort", string(f.SortKey))
	}
	if f.SortOrder != OrderDesc {
		q.Set("order", string(f.SortOrder))
	}
	return q
}

// QueryString returns the encoded state ready to append to the listing path,
// empty for the default state.
func (f FilterState) QueryString() string {
	q := f.Encode()
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListingURL is the shareable URL for the current state.
func (f FilterState) ListingURL() string {
	return "/projects" + f.QueryString()
}

func matchesSearch(p ProjectRecord, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Summary), needle) {
		return true
	}
	for _, tech := range p.Stack {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}

func compareProjects(a, b ProjectRecord, key SortKey) int {
	switch key {
	case SortName:
		return strings.Compare(a.Title, b.Title)
	case SortCategory:
		return strings.Compare(string(a.Category), string(b.Category))
	default:
		return a.Year - b.Year
	}
}

// visibleProjects derives the ordered subset of the catalog to display. Pure:
// no side effects, input slice untouched.
//
// The search text is applied first and always ANDs in, regardless of combine
// mode. Facet predicates are then combined per mode; with no active facet
// every text-matched project passes. Sorting is stable with the catalog order
// as tie-break, and descending reverses the comparison rather than the final
// sequence so ties keep their relative order either way.
func visibleProjects(projects []ProjectRecord, f FilterState) []ProjectRecord {
	out := make([]ProjectRecord, 0, len(projects))
	for _, p := range projects {
		if !matchesSearch(p, f.Search) {
			continue
		}
		var checks []bool
		if f.Category != FacetAll {
			checks = append(checks, string(p.Category) == f.Category)
		}
		if f.Year != 0 {
			checks = append(checks, p.Year == f.Year)
		}
		if f.Stack != FacetAll {
			checks = append(checks, slices.Contains(p.Stack, f.Stack))
		}
		if !combine(checks, f.Mode) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(a, b ProjectRecord) int {
		c := compareProjects(a, b, f.SortKey)
		if f.SortOrder == OrderDesc {
			c = -c
		}
		return c
	})
	return out
}

func combine(checks []bool, mode CombineMode) bool {
	if len(checks) == 0 {
		return true
	}
	if mode == ModeOR {
		return slices.Contains(checks, true)
	}
	return !slices.Contains(checks, false)
}
