package models

import (
	"time"

	"github.com/salonbook/salon-booking-service/internal/domain"
	"github.com/salonbook/salon-booking-service/internal/integrations/userservice"
)

// AppointmentInfo информация о записи для выдачи наружу
type AppointmentInfo struct {
	ID        int64  `json:"id"`
	SalonID   int64  `json:"salon_id"`
	UserID    int64  `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CustomerInfo информация о клиенте салонов владельца
// Name и Email пустые, если профиль недоступен (graceful degradation)
type CustomerInfo struct {
	UserID         int64  `json:"user_id"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	ProfileMissing bool   `json:"profile_missing,omitempty"`
}

// UserDashboard сводка записей пользователя
type UserDashboard struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// SalonDashboard сводка записей по салонам владельца
type SalonDashboard struct {
	Total           int `json:"total"`
	Upcoming        int `json:"upcoming"`
	Completed       int `json:"completed"`
	Cancelled       int `json:"cancelled"`
	UniqueCustomers int `json:"unique_customers"`
}

// AppointmentInfoFromDomain конвертирует доменную запись в выдачу
func AppointmentInfoFromDomain(a *domain.Appointment) *AppointmentInfo {
	return &AppointmentInfo{
		ID:        a.ID,
		SalonID:   a.SalonID,
		UserID:    a.UserID,
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// AppointmentInfosFromDomain конвертирует список доменных записей
func AppointmentInfosFromDomain(appts []*domain.Appointment) []*AppointmentInfo {
	result := make([]*AppointmentInfo, 0, len(appts))
	for _, a := range appts {
		result = append(result, AppointmentInfoFromDomain(a))
	}
	return result
}

// CustomerInfoFromProfile собирает информацию о клиенте из профиля
// Если профиль недоступен, остаётся только идентификатор
func CustomerInfoFromProfile(userID int64, profile *userservice.Profile) *CustomerInfo {
	if profile == nil {
		return &CustomerInfo{UserID: userID, ProfileMissing: true}
	}
	return &CustomerInfo{
		UserID: userID,
		Name:   profile.Name,
		Email:  profile.Email,
	}
}
