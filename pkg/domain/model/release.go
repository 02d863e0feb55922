package model

import "time"

// Release identifies what is being announced. It is the data available to
// title and content templates.
type Release struct {
	Project string
	Version string
}

// ReleaseRecord is a successful announcement stored in the ledger
type ReleaseRecord struct {
	Project     string
	Version     string
	DeliveryID  string
	Segments    int
	DeliveredAt time.Time
}
