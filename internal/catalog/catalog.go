package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"homenest/server/internal/models"

	"github.com/sirupsen/logrus"
)

// seedFile is the on-disk shape of the property seed data.
type seedFile struct {
	Buy  []models.Property `json:"buy"`
	Rent []models.Property `json:"rent"`
}

// Catalog holds the immutable property reference data, split into the
// buy and rent segments. The data is replaced wholesale on reload;
// individual records are never mutated.
type Catalog struct {
	mu     sync.RWMutex
	buy    []models.Property
	rent   []models.Property
	path   string
	logger *logrus.Logger
}

// Load reads the seed file at path and builds the catalog.
func Load(path string, logger *logrus.Logger) (*Catalog, error) {
	if logger == nil {
		logger = logrus.New()
	}

	c := &Catalog{path: path, logger: logger}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the seed file, replacing the catalog contents. On
// error the previous contents are kept.
func (c *Catalog) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if err := validateSeed(seed); err != nil {
		return err
	}

	c.mu.Lock()
	c.buy = seed.Buy
	c.rent = seed.Rent
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"buy":  len(seed.Buy),
		"rent": len(seed.Rent),
	}).Info("Loaded property catalog")
	return nil
}

// validateSeed enforces the catalog invariants: unique ids within a
// segment, non-negative prices, school ratings in [0,10].
func validateSeed(seed seedFile) error {
	for _, segment := range [][]models.Property{seed.Buy, seed.Rent} {
		seen := make(map[int64]bool, len(segment))
		for _, p := range segment {
			if seen[p.ID] {
				return fmt.Errorf("duplicate property id %d in seed", p.ID)
			}
			seen[p.ID] = true

			if p.Price < 0 {
				return fmt.Errorf("property %d has negative price", p.ID)
			}
			for _, s := range p.Schools {
				if s.Rating < 0 || s.Rating > 10 {
					return fmt.Errorf("property %d has school rating %d out of range", p.ID, s.Rating)
				}
			}
		}
	}
	return nil
}

// Segment returns the properties for the given segment name in seed
// order. Unknown segment names fall back to buy.
func (c *Catalog) Segment(name string) []models.Property {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name == models.SegmentRent {
		return c.rent
	}
	return c.buy
}

// Get looks up a property by id across both segments.
func (c *Catalog) Get(id int64) (models.Property, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, segment := range [][]models.Property{c.buy, c.rent} {
		for _, p := range segment {
			if p.ID == id {
				return p, true
			}
		}
	}
	return models.Property{}, false
}

// Has reports whether a property with the given id exists.
func (c *Catalog) Has(id int64) bool {
	_, ok := c.Get(id)
	return ok
}

// Stats computes summary figures over one segment.
func (c *Catalog) Stats(segment string) models.CatalogStats {
	properties := c.Segment(segment)

	stats := models.CatalogStats{TotalProperties: len(properties)}
	if len(properties) == 0 {
		return stats
	}

	prices := make([]int, 0, len(properties))
	var priceSum, sqftWeighted float64
	for _, p := range properties {
		prices = append(prices, p.Price)
		priceSum += float64(p.Price)
		if p.Sqft > 0 {
			sqftWeighted += float64(p.Price) / float64(p.Sqft)
		}
		if p.Featured {
			stats.TotalFeatured++
		}
	}

	sort.Ints(prices)
	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		stats.MedianPrice = float64(prices[mid-1]+prices[mid]) / 2
	} else {
		stats.MedianPrice = float64(prices[mid])
	}

	stats.AveragePrice = priceSum / float64(len(properties))
	stats.AvgPricePerSqft = sqftWeighted / float64(len(properties))
	return stats
}
