package utilcss

import (
	"sort"
	"strings"

	"github.com/yacobolo/utilcss/stylesheet"
)

// PropertyCategory groups generated rules for reporting.
type PropertyCategory string

// Rule categories, derived from the first declared property.
const (
	CategoryLayout     PropertyCategory = "Layout"
	CategoryVisual     PropertyCategory = "Visual"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryOther      PropertyCategory = "Other"
)

// propertyCategories maps exact property names that the prefix rules below
// would place wrongly or not at all.
var propertyCategories = map[string]PropertyCategory{
	"color":          CategoryVisual,
	"fill":           CategoryVisual,
	"stroke":         CategoryVisual,
	"opacity":        CategoryVisual,
	"box-shadow":     CategoryVisual,
	"cursor":         CategoryVisual,
	"visibility":     CategoryVisual,
	"display":        CategoryLayout,
	"position":       CategoryLayout,
	"order":          CategoryLayout,
	"inset":          CategoryLayout,
	"top":            CategoryLayout,
	"right":          CategoryLayout,
	"bottom":         CategoryLayout,
	"left":           CategoryLayout,
	"width":          CategoryLayout,
	"height":         CategoryLayout,
	"z-index":        CategoryLayout,
	"aspect-ratio":   CategoryLayout,
	"line-height":    CategoryTypography,
	"letter-spacing": CategoryTypography,
	"white-space":    CategoryTypography,
	"word-break":     CategoryTypography,
	"pointer-events": CategoryEffects,
	"user-select":    CategoryEffects,
	"filter":         CategoryEffects,
}

// categoryPrefixes is consulted in order when no exact entry exists.
var categoryPrefixes = []struct {
	prefix   string
	category PropertyCategory
}{
	{"text-", CategoryTypography},
	{"font-", CategoryTypography},
	{"background", CategoryVisual},
	{"border", CategoryVisual},
	{"outline", CategoryVisual},
	{"margin", CategoryLayout},
	{"padding", CategoryLayout},
	{"flex", CategoryLayout},
	{"grid", CategoryLayout},
	{"gap", CategoryLayout},
	{"row-gap", CategoryLayout},
	{"column-gap", CategoryLayout},
	{"justify-", CategoryLayout},
	{"align-", CategoryLayout},
	{"place-", CategoryLayout},
	{"overflow", CategoryLayout},
	{"min-", CategoryLayout},
	{"max-", CategoryLayout},
	{"inset-", CategoryLayout},
	{"transition", CategoryEffects},
	{"animation", CategoryEffects},
	{"transform", CategoryEffects},
	{"backdrop-", CategoryEffects},
}

// categorizeProperty determines the category of a CSS property.
func categorizeProperty(name string) PropertyCategory {
	name = strings.ToLower(name)
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryOther
}

// categorizeRule places a rule by its first declaration.
func categorizeRule(r stylesheet.Rule) PropertyCategory {
	if len(r.Declarations) == 0 {
		return CategoryOther
	}
	return categorizeProperty(r.Declarations[0].Property)
}

// CategoryCount is one row of a per-category breakdown.
type CategoryCount struct {
	Category PropertyCategory
	Rules    int
}

// countCategories tallies rules per category, largest first, ties by name.
func countCategories(rules []stylesheet.Rule) []CategoryCount {
	counts := make(map[PropertyCategory]int)
	for _, r := range rules {
		counts[categorizeRule(r)]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		result = append(result, CategoryCount{Category: cat, Rules: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rules != result[j].Rules {
			return result[i].Rules > result[j].Rules
		}
		return result[i].Category < result[j].Category
	})
	return result
}
