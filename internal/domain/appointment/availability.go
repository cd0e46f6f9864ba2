package appointment

import "time"

type SlotsInput struct {
	Date            time.Time
	ServiceDuration int // minutes
}

type TimeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
