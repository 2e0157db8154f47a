package models

import "time"

// VisitorModel is an append-only visit record. Country may be empty when the
// geolocation lookup failed; aggregation folds those into the fallback bucket.
type VisitorModel struct {
	Base
	IP        string    `json:"ip"        gorm:"index"`
	Country   string    `json:"country"`
	VisitedAt time.Time `json:"visitedAt" gorm:"index"`
}

func (VisitorModel) TableName() string { return "visitors" }
