package catalog

import (
	"testing"

	"homenest/server/internal/models"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []models.Property {
	return []models.Property{
		{ID: 1, Title: "Modern Downtown Apartment", City: "San Francisco", Address: "123 Main Street", ZipCode: "94102", Type: models.TypeApartment, Price: 450000},
		{ID: 2, Title: "Suburban Family Home", City: "Palo Alto", Address: "456 Oak Avenue", ZipCode: "94301", Type: models.TypeHouse, Price: 750000},
		{ID: 3, Title: "Luxury Waterfront Condo", City: "Miami", Address: "789 Beach Road", ZipCode: "33139", Type: models.TypeCondo, Price: 1200000},
		{ID: 4, Title: "Cozy Studio Apartment", City: "Seattle", Address: "321 Pine Street", ZipCode: "98101", Type: models.TypeApartment, Price: 280000},
	}
}

func propertyIDs(properties []models.Property) []int64 {
	ids := make([]int64, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name        string
		criteria    Criteria
		expectedIDs []int64
	}{
		{
			name:        "Empty criteria returns everything",
			criteria:    Criteria{Query: "", Type: "all", PriceRange: "all"},
			expectedIDs: []int64{1, 2, 3, 4},
		},
		{
			name:        "Query matches title case-insensitively",
			criteria:    Criteria{Query: "modern"},
			expectedIDs: []int64{1},
		},
		{
			name:        "Query matches city",
			criteria:    Criteria{Query: "miami"},
			expectedIDs: []int64{3},
		},
		{
			name:        "Query matches address",
			criteria:    Criteria{Query: "oak avenue"},
			expectedIDs: []int64{2},
		},
		{
			name:        "Query matches zip code",
			criteria:    Criteria{Query: "98101"},
			expectedIDs: []int64{4},
		},
		{
			name:        "Query with no match returns empty",
			criteria:    Criteria{Query: "nonexistent"},
			expectedIDs: []int64{},
		},
		{
			name:        "Type filter",
			criteria:    Criteria{Type: models.TypeApartment},
			expectedIDs: []int64{1, 4},
		},
		{
			name:        "Unknown type fails open",
			criteria:    Criteria{Type: "all"},
			expectedIDs: []int64{1, 2, 3, 4},
		},
		{
			name:        "Closed price bucket",
			criteria:    Criteria{PriceRange: "0-500000"},
			expectedIDs: []int64{1, 4},
		},
		{
			name:        "Middle price bucket",
			criteria:    Criteria{PriceRange: "500000-1000000"},
			expectedIDs: []int64{2},
		},
		{
			name:        "Open-ended price bucket",
			criteria:    Criteria{PriceRange: "1000000-"},
			expectedIDs: []int64{3},
		},
		{
			name:        "Upper bound is exclusive",
			criteria:    Criteria{PriceRange: "0-450000"},
			expectedIDs: []int64{4},
		},
		{
			name:        "Lower bound is inclusive",
			criteria:    Criteria{PriceRange: "450000-750000"},
			expectedIDs: []int64{1},
		},
		{
			name:        "Malformed price range fails open",
			criteria:    Criteria{PriceRange: "cheap"},
			expectedIDs: []int64{1, 2, 3, 4},
		},
		{
			name:        "Inverted price range fails open",
			criteria:    Criteria{PriceRange: "900000-100000"},
			expectedIDs: []int64{1, 2, 3, 4},
		},
		{
			name:        "All predicates are ANDed",
			criteria:    Criteria{Query: "apartment", Type: models.TypeApartment, PriceRange: "0-500000"},
			expectedIDs: []int64{1, 4},
		},
		{
			name:        "Conjunction can exclude",
			criteria:    Criteria{Query: "seattle", Type: models.TypeHouse},
			expectedIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(testCatalog(), tt.criteria)
			assert.Equal(t, tt.expectedIDs, propertyIDs(result))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	// Matches must come back in catalog order regardless of criteria.
	result := Filter(testCatalog(), Criteria{Type: models.TypeApartment})

	assert.Equal(t, []int64{1, 4}, propertyIDs(result))
}

func TestFilterIsIdempotent(t *testing.T) {
	criteria := Criteria{Query: "a", PriceRange: "0-1000000"}

	once := Filter(testCatalog(), criteria)
	twice := Filter(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	input := testCatalog()
	Filter(input, Criteria{Query: "miami"})

	assert.Equal(t, testCatalog(), input)
}

func TestFilterConjunctionLaw(t *testing.T) {
	// A property is in the result iff it passes each predicate alone.
	criteria := Criteria{Query: "apartment", Type: models.TypeApartment, PriceRange: "300000-"}
	input := testCatalog()

	result := Filter(input, criteria)

	for _, p := range input {
		single := []models.Property{p}
		passesAll := len(Filter(single, Criteria{Query: criteria.Query})) == 1 &&
			len(Filter(single, Criteria{Type: criteria.Type})) == 1 &&
			len(Filter(single, Criteria{PriceRange: criteria.PriceRange})) == 1
		assert.Equal(t, passesAll, contains(result, p.ID),
			"conjunction law failed for property %d", p.ID)
	}
}

func contains(properties []models.Property, id int64) bool {
	for _, p := range properties {
		if p.ID == id {
			return true
		}
	}
	return false
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		min     int
		max     int
		bounded bool
	}{
		{"All", "all", 0, 0, false},
		{"Empty", "", 0, 0, false},
		{"Closed", "0-500000", 0, 500000, true},
		{"Open-ended", "1000000-", 1000000, 0, true},
		{"No separator", "500000", 0, 0, false},
		{"Non-numeric min", "x-500000", 0, 0, false},
		{"Non-numeric max", "0-y", 0, 0, false},
		{"Negative min", "-100-200", 0, 0, false},
		{"Max below min", "500-100", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, bounded := parsePriceRange(tt.token)
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
			assert.Equal(t, tt.bounded, bounded)
		})
	}
}
