package update_appointment_status

// Request тело запроса на смену статуса записи
type Request struct {
	Status string `json:"status"`
}
