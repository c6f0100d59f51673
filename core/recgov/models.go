package recgov

// MonthlyAvailability is the body of the monthly summary endpoint.
type MonthlyAvailability struct {
	// Dates is keyed by local date (yyyy-MM-dd).
	Dates map[string]MonthlyDaySummary `json:"facility_availability_summary_view_by_local_date"`
}

// MonthlyDaySummary is the facility-level summary of a single day.
type MonthlyDaySummary struct {
	AvailabilityLevel string `json:"availability_level"`
	FacilityID        int    `json:"facility_id"`
	LocalDate         string `json:"local_date"`
	ReservedCount     int    `json:"reserved_count"`
	ScheduledCount    int    `json:"scheduled_count"`
	// Tours is keyed by the tour id rendered as a string.
	Tours map[string]TourSummary `json:"tour_availability_summary_view_by_tour_id"`
}

// TourSummary is the per-tour summary of a single day.
type TourSummary struct {
	AvailabilityLevel string `json:"availability_level"`
	FacilityID        int    `json:"facility_id"`
	TourID            int    `json:"tour_id"`
	LocalDate         string `json:"local_date"`
	HasNotYetReleased bool   `json:"has_not_yet_released"`
	HasReservable     bool   `json:"has_reservable"`
	HasWalkUp         bool   `json:"has_walk_up"`
	// NextReleaseTimestamp is an RFC 3339 instant after which secondary inventory counts.
	// Nil when the API omits it.
	NextReleaseTimestamp *string `json:"next_release_timestamp"`
	NotYetReleased       int     `json:"not_yet_released"`
	Reservable           int     `json:"reservable"`
	ReservedCount        int     `json:"reserved_count"`
	ScheduledCount       int     `json:"scheduled_count"`
	WalkUp               int     `json:"walk_up"`
}

// DailyAvailability is one element of the daily endpoint's array body.
type DailyAvailability struct {
	InventoryCount   Count `json:"inventory_count"`
	ReservationCount Count `json:"reservation_count"`
}

// Count splits a ticket count into the primary and secondary pools.
type Count struct {
	Any          int `json:"ANY"`
	AnySecondary int `json:"ANY_SECONDARY"`
}
