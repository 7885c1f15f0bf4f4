package domain

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinBookingsPerSlot     = 1
	MaxBookingsPerSlotCap  = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Salon offer statuses
const (
	OfferStatusActive   = "active"
	OfferStatusInactive = "inactive"
)
