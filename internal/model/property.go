package model

type Property struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Status            string          `json:"status"`
	Price             float64         `json:"price"`
	PricePeriod       string          `json:"price_period,omitempty"`
	Bedrooms          int             `json:"bedrooms,omitempty"`
	Bathrooms         int             `json:"bathrooms,omitempty"`
	AreaSqm           float64         `json:"area_sqm,omitempty"`
	Description       string          `json:"description,omitempty"`
	MainImageURL      string          `json:"main_image_url"`
	MainImagePublicID string          `json:"main_image_public_id,omitempty"`
	CreatedAt         string          `json:"created_at"`
	Images            []PropertyImage `json:"images,omitempty"`
	Amenities         []Amenity       `json:"amenities,omitempty"`
	ViewCount         int64           `json:"view_count,omitempty"`
	Availability      string          `json:"availability,omitempty"`
}

type PropertyImage struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PropertyFilter is the query surface of the public listing endpoint.
// Zero values are omitted from the outgoing query string.
type PropertyFilter struct {
	Page     int
	Limit    int
	Status   string
	Type     string
	Keyword  string
	MinPrice float64
	MaxPrice float64
}

// DealType values accepted by the close-deal endpoint.
const (
	DealSold   = "Sold"
	DealRented = "Rented"
)

type CloseDealRequest struct {
	TransactionType string  `json:"transaction_type"`
	FinalPrice      float64 `json:"final_price"`
	UserID          int64   `json:"user_id,omitempty"`
}

type DashboardStats struct {
	TotalProperties int64   `json:"total_properties"`
	ForSale         int64   `json:"for_sale"`
	ForRent         int64   `json:"for_rent"`
	TotalRevenue    float64 `json:"total_revenue"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type RevenueEntry struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type SearchStat struct {
	Keyword string `json:"keyword"`
	Count   int64  `json:"count"`
}
