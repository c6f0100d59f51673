package recgov

// Config holds configuration for the reservation availability API.
type Config struct {
	// BaseURL is the scheme and host of the API.
	BaseURL string `mapstructure:"base_url" default:"https://www.recreation.gov"`
	// FacilityID is the facility whose availability is watched.
	FacilityID int `mapstructure:"facility_id" default:"10086745"`
	// TourID selects the tour summary inside the monthly response.
	TourID int `mapstructure:"tour_id" default:"10086746"`
	// InventoryBucket is the fixed inventory filter sent to the monthly endpoint.
	InventoryBucket string `mapstructure:"inventory_bucket" default:"FIT"`
	// TimeoutSeconds bounds each request, including reading the body.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"availability-watcher/1.0"`
}
