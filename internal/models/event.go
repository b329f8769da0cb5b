package models

import "time"

type EventRequest struct {
	EventID       string    `json:"eventId"`
	EventName     string    `json:"eventName"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	CompanyID     string    `json:"companyId"`
	TableLayouts  []string  `json:"tableLayouts"`
	Categories    []string  `json:"categories"`
	ClubCardIDs   []string  `json:"clubCardIds"`
	EventGenre    []string  `json:"eventGenre"`
}
