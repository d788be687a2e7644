package booking

import (
	"context"
	"fmt"
	"time"

	"wheelify/models"
)

// memStore is an in-memory SessionStore. Values are copied on save and load
// the way the cache serialization would, so mutations on a returned session
// never leak into the stored one.
type memStore struct {
	sessions  map[string]models.BookingSession
	checkouts map[string]models.CheckoutProcess

	saveSessionErr  error
	saveCheckoutErr error
}

func newMemStore() *memStore {
	return &memStore{
		sessions:  make(map[string]models.BookingSession),
		checkouts: make(map[string]models.CheckoutProcess),
	}
}

func (m *memStore) SaveSession(ctx context.Context, s *models.BookingSession) error {
	if m.saveSessionErr != nil {
		return m.saveSessionErr
	}
	m.sessions[s.SessionID] = *s
	return nil
}

func (m *memStore) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := s
	return &cp, nil
}

func (m *memStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func (m *memStore) SaveCheckout(ctx context.Context, p *models.CheckoutProcess) error {
	if m.saveCheckoutErr != nil {
		return m.saveCheckoutErr
	}
	m.checkouts[p.SessionID] = *p
	return nil
}

func (m *memStore) GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutProcess, error) {
	p, ok := m.checkouts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := p
	return &cp, nil
}

func (m *memStore) DeleteCheckout(ctx context.Context, sessionID string) error {
	delete(m.checkouts, sessionID)
	return nil
}

// fakeReservationRepo records calls and returns scripted results.
type fakeReservationRepo struct {
	created  []*models.Reservation
	byID     map[string]*models.Reservation
	overlaps []models.Reservation

	createErr   error
	getErr      error
	findErr     error
	markPaidErr error

	findCalls     int
	markPaidCalls int
	paidRefs      map[string]string
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		byID:     make(map[string]*models.Reservation),
		paidRefs: make(map[string]string),
	}
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	f.byID[r.ID] = r
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s not found", id)
	}
	return r, nil
}

func (f *fakeReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.byID {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindOverlapping(ctx context.Context, vehicleID string, start, end time.Time) ([]models.Reservation, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.overlaps, nil
}

func (f *fakeReservationRepo) MarkPaid(ctx context.Context, id, paymentRef string) error {
	f.markPaidCalls++
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	f.paidRefs[id] = paymentRef
	if r, ok := f.byID[id]; ok {
		r.Status = models.StatusConfirmed
		r.PaymentRef = paymentRef
	}
	return nil
}

func (f *fakeReservationRepo) Cancel(ctx context.Context, id, reason string) error {
	if r, ok := f.byID[id]; ok {
		r.Status = models.StatusCancelled
		r.CancelReason = reason
	}
	return nil
}

func (f *fakeReservationRepo) CancelIfUnpaid(ctx context.Context, id, reason string) (bool, error) {
	r, ok := f.byID[id]
	if !ok || r.Status != models.StatusPendingPayment {
		return false, nil
	}
	r.Status = models.StatusCancelled
	r.CancelReason = reason
	return true, nil
}

// fakePayments scripts the payment processor boundary.
type fakePayments struct {
	intent     PaymentIntent
	confirmRef string

	createErr  error
	confirmErr error

	createCalls  int
	confirmCalls int
}

func (f *fakePayments) CreateIntent(ctx context.Context, reservationID string, amount float64, currency string) (*PaymentIntent, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	intent := f.intent
	return &intent, nil
}

func (f *fakePayments) ConfirmIntent(ctx context.Context, intentID string, card models.CardDetails) (string, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return "", f.confirmErr
	}
	return f.confirmRef, nil
}

// fakeExpiry records scheduled expiries.
type fakeExpiry struct {
	scheduled []string
	err       error
}

func (f *fakeExpiry) ScheduleExpiry(reservationID string, at time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, reservationID)
	return nil
}

// fakeVehicleRepo serves a fixed catalogue.
type fakeVehicleRepo struct {
	vehicles map[string]models.Vehicle
}

func (f *fakeVehicleRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %s not found", id)
	}
	return &v, nil
}

func (f *fakeVehicleRepo) List(ctx context.Context) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}
