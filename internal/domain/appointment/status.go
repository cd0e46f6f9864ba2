package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel rejects a second cancellation; cancelled is terminal.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return ErrAppointmentAlreadyCancelled
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}

// Blocks reports whether an appointment in this status occupies its interval.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}
