package models

import "time"

// AccessEntry is one served HTTP request as shown on the stats page.
type AccessEntry struct {
	Time      time.Time `json:"time"`
	IP        string    `json:"ip"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	UserAgent string    `json:"user_agent"`
}
