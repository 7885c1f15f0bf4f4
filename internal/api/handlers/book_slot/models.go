package book_slot

// Request тело запроса на бронирование слота
type Request struct {
	SalonID   int64  `json:"salon_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}
