package models

// Property types recognized by the catalog.
const (
	TypeHouse     = "house"
	TypeApartment = "apartment"
	TypeCondo     = "condo"
)

// Catalog segments.
const (
	SegmentBuy  = "buy"
	SegmentRent = "rent"
)

type Property struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Price       int      `json:"price"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zip_code"`
	Type        string   `json:"type"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Sqft        int      `json:"sqft"`
	ImageURL    string   `json:"image_url"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	Features    []string `json:"features"`

	InteriorFeatures InteriorFeatures `json:"interior_features"`
	PropertyDetails  PropertyDetails  `json:"property_details"`
	NearbyCities     []NearbyCity     `json:"nearby_cities"`
	PriceHistory     []PriceEvent     `json:"price_history"`
	TaxHistory       []TaxRecord      `json:"tax_history"`
	Schools          []School         `json:"schools"`
}

type InteriorFeatures struct {
	Heating    string   `json:"heating"`
	Cooling    string   `json:"cooling"`
	Appliances []string `json:"appliances"`
	Flooring   string   `json:"flooring"`
	Windows    string   `json:"windows"`
}

type PropertyDetails struct {
	Parking      string `json:"parking"`
	LotSize      string `json:"lot_size"`
	YearBuilt    int    `json:"year_built"`
	Construction string `json:"construction"`
}

type NearbyCity struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type PriceEvent struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
	Event string `json:"event"`
}

type TaxRecord struct {
	Year       int `json:"year"`
	Tax        int `json:"tax"`
	Assessment int `json:"assessment"`
}

// School rating is on a 0-10 scale.
type School struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Distance string `json:"distance"`
}

type CatalogStats struct {
	TotalProperties int     `json:"total_properties"`
	AveragePrice    float64 `json:"average_price"`
	MedianPrice     float64 `json:"median_price"`
	AvgPricePerSqft float64 `json:"avg_price_per_sqft"`
	TotalFeatured   int     `json:"total_featured"`
}
