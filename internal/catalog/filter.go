package catalog

import (
	"strconv"
	"strings"

	"homenest/server/internal/models"
)

// Criteria are the three listing filters exposed by the search UI.
// Zero values and unrecognized tokens all mean "no filter": criteria
// fail open, never error.
type Criteria struct {
	// Query is matched case-insensitively as a substring of title,
	// city, address and zip code. Empty matches everything.
	Query string

	// Type is one of the property types, or "all".
	Type string

	// PriceRange is "min-max", "min-" (open-ended), or "all".
	PriceRange string
}

// Filter returns the properties matching all three criteria, in
// catalog order. It never reorders and never mutates its input.
func Filter(properties []models.Property, c Criteria) []models.Property {
	min, max, bounded := parsePriceRange(c.PriceRange)

	matched := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if !matchesQuery(p, c.Query) {
			continue
		}
		if c.Type != "" && c.Type != "all" && p.Type != c.Type {
			continue
		}
		if bounded {
			// Half-open bucket: adjacent buckets partition the
			// price line with no overlap.
			if p.Price < min || (max > 0 && p.Price >= max) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesQuery(p models.Property, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{p.Title, p.City, p.Address, p.ZipCode} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// parsePriceRange parses a "min-max" or "min-" token. max == 0 means
// open-ended. bounded is false for "all", empty or malformed tokens.
func parsePriceRange(token string) (min, max int, bounded bool) {
	if token == "" || token == "all" {
		return 0, 0, false
	}

	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	min, err := strconv.Atoi(parts[0])
	if err != nil || min < 0 {
		return 0, 0, false
	}

	if parts[1] == "" {
		return min, 0, true
	}

	max, err = strconv.Atoi(parts[1])
	if err != nil || max < min {
		return 0, 0, false
	}
	return min, max, true
}
