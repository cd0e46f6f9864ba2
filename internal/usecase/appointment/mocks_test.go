package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) FindAppointmentsOverlapping(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) FindAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	ap, _ := args.Get(0).(*models.Appointment)
	return ap, args.Error(1)
}

func (m *mockAppointmentRepo) FindAppointmentsByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, start, end)
	appts, _ := args.Get(0).([]models.Appointment)
	return appts, args.Error(1)
}

func (m *mockAppointmentRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockAppointmentRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) FindAvailabilityOverlapping(ctx context.Context, from, to time.Time) ([]models.Availability, error) {
	args := m.Called(ctx, from, to)
	windows, _ := args.Get(0).([]models.Availability)
	return windows, args.Error(1)
}

func (m *mockAvailabilityRepo) SaveAvailability(ctx context.Context, av *models.Availability) error {
	return m.Called(ctx, av).Error(0)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *mockServiceRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]models.Service)
	return s, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) SaveUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

type fakeLocker struct {
	ok       bool
	err      error
	keys     []string
	released int
}

func (l *fakeLocker) Acquire(_ context.Context, key string) (func(), bool, error) {
	l.keys = append(l.keys, key)
	if l.err != nil || !l.ok {
		return nil, false, l.err
	}
	return func() { l.released++ }, true, nil
}

func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}
