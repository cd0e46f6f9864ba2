package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

// Overlaps is the half-open interval test [aStart,aEnd) x [bStart,bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FitsInAnyWindow reports whether [start,end] lies inside at least one window.
func FitsInAnyWindow(start, end time.Time, windows []models.Availability) bool {
	for _, w := range windows {
		if !start.Before(w.StartTime) && !end.After(w.EndTime) {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether a non-cancelled appointment overlaps [start,end).
func ConflictsWith(start, end time.Time, appointments []models.Appointment) bool {
	for _, ap := range appointments {
		if !Status(ap.Status).Blocks() {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}

// EndTime derives the appointment end from the service duration in minutes.
func EndTime(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

// ComputeSlots walks each window in the given order in steps of duration,
// emitting candidates that fit the window and overlap no blocking
// appointment. The cursor always advances by a full step.
func ComputeSlots(
	windows []models.Availability,
	appointments []models.Appointment,
	duration time.Duration,
) []TimeSlot {

	slots := make([]TimeSlot, 0)
	if duration <= 0 {
		return slots
	}

	for _, w := range windows {
		for cur := w.StartTime; cur.Before(w.EndTime); {
			slotEnd := cur.Add(duration)
			if slotEnd.After(w.EndTime) {
				break
			}

			if !ConflictsWith(cur, slotEnd, appointments) {
				slots = append(slots, TimeSlot{
					StartTime: cur,
					EndTime:   slotEnd,
				})
			}

			cur = slotEnd
		}
	}

	return slots
}
