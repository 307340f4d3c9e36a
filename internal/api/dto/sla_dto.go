package dto

import "time"

// LoginRequest is the ops login payload.
type LoginRequest struct {
	SubjectID string `json:"subject_id"`
	Password  string `json:"password"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AddHolidayRequest describes a calendar exception date.
type AddHolidayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// HolidaysResponse lists the configured holiday dates.
type HolidaysResponse struct {
	Holidays []string `json:"holidays"`
}
