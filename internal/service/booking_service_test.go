package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

type mockBookingStore struct{ mock.Mock }

func (m *mockBookingStore) Create(ctx context.Context, userID, slotID int64) (*model.Booking, error) {
	args := m.Called(ctx, userID, slotID)
	if b := args.Get(0); b != nil {
		return b.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) UpdateStatus(ctx context.Context, b *model.Booking, status string) (*model.Booking, error) {
	args := m.Called(ctx, b, status)
	if out := args.Get(0); out != nil {
		return out.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if out := args.Get(0); out != nil {
		return out.([]*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) ListByUser(ctx context.Context, userID int64) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if out := args.Get(0); out != nil {
		return out.([]*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) ListByGround(ctx context.Context, groundID int64) ([]*model.Booking, error) {
	args := m.Called(ctx, groundID)
	if out := args.Get(0); out != nil {
		return out.([]*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func newBookingService(store *mockBookingStore) *BookingService {
	return NewBookingService(store, nil, nil, nil, nopLogger())
}

func confirmedBooking(id, userID int64) *model.Booking {
	return &model.Booking{
		ID:          id,
		UserID:      userID,
		SlotID:      7,
		BookingDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:      model.BookingConfirmed,
	}
}

func TestBookingCreate(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	want := confirmedBooking(1, 42)
	store.On("Create", mock.Anything, int64(42), int64(7)).Return(want, nil)

	got, err := svc.Create(context.Background(), Identity{UserID: 42}, 7)
	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, got.Status)
	assert.Equal(t, int64(42), got.UserID)
	store.AssertExpectations(t)
}

func TestBookingCreateSlotUnavailable(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("Create", mock.Anything, int64(42), int64(7)).Return(nil, repository.ErrSlotUnavailable)

	_, err := svc.Create(context.Background(), Identity{UserID: 42}, 7)
	assert.ErrorIs(t, err, repository.ErrSlotUnavailable)
}

func TestBookingCancelByOwner(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	b := confirmedBooking(1, 42)
	cancelled := *b
	cancelled.Status = model.BookingCancelled
	store.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	store.On("UpdateStatus", mock.Anything, b, model.BookingCancelled).Return(&cancelled, nil)

	got, err := svc.UpdateStatus(context.Background(), Identity{UserID: 42}, 1, model.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, got.Status)
	store.AssertExpectations(t)
}

func TestBookingCancelByStrangerForbidden(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(1, 42), nil)

	_, err := svc.UpdateStatus(context.Background(), Identity{UserID: 99}, 1, model.BookingCancelled)
	assert.ErrorIs(t, err, repository.ErrForbidden)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingCompleteRequiresAdmin(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(1, 42), nil)

	// Even the owner cannot complete their own booking.
	_, err := svc.UpdateStatus(context.Background(), Identity{UserID: 42}, 1, model.BookingCompleted)
	assert.ErrorIs(t, err, repository.ErrForbidden)
}

func TestBookingCompleteByAdmin(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	b := confirmedBooking(1, 42)
	completed := *b
	completed.Status = model.BookingCompleted
	store.On("GetByID", mock.Anything, int64(1)).Return(b, nil)
	store.On("UpdateStatus", mock.Anything, b, model.BookingCompleted).Return(&completed, nil)

	got, err := svc.UpdateStatus(context.Background(), Identity{UserID: 5, IsAdmin: true}, 1, model.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.BookingCompleted, got.Status)
}

func TestBookingTerminalStatesRejectTransitions(t *testing.T) {
	for _, terminal := range []string{model.BookingCancelled, model.BookingCompleted} {
		store := new(mockBookingStore)
		svc := newBookingService(store)
		b := confirmedBooking(1, 42)
		b.Status = terminal
		store.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

		_, err := svc.UpdateStatus(context.Background(), Identity{UserID: 5, IsAdmin: true}, 1, model.BookingCancelled)
		assert.ErrorIs(t, err, repository.ErrInvalidTransition, "from %s", terminal)
	}
}

func TestBookingConfirmedIsNotATarget(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(1, 42), nil)

	_, err := svc.UpdateStatus(context.Background(), Identity{UserID: 5, IsAdmin: true}, 1, model.BookingConfirmed)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)
}

func TestBookingGetOwnership(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("GetByID", mock.Anything, int64(1)).Return(confirmedBooking(1, 42), nil)

	_, err := svc.Get(context.Background(), Identity{UserID: 42}, 1)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), Identity{UserID: 99}, 1)
	assert.ErrorIs(t, err, repository.ErrForbidden)

	_, err = svc.Get(context.Background(), Identity{UserID: 99, IsAdmin: true}, 1)
	assert.NoError(t, err)
}

func TestBookingListAdminOnly(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("List", mock.Anything).Return([]*model.Booking{}, nil)

	_, err := svc.List(context.Background(), Identity{UserID: 42})
	assert.ErrorIs(t, err, repository.ErrForbidden)

	_, err = svc.List(context.Background(), Identity{UserID: 5, IsAdmin: true})
	assert.NoError(t, err)
}

func TestBookingListByUserOwnership(t *testing.T) {
	store := new(mockBookingStore)
	svc := newBookingService(store)
	store.On("ListByUser", mock.Anything, int64(42)).Return([]*model.Booking{}, nil)

	_, err := svc.ListByUser(context.Background(), Identity{UserID: 42}, 42)
	assert.NoError(t, err)

	_, err = svc.ListByUser(context.Background(), Identity{UserID: 99}, 42)
	assert.ErrorIs(t, err, repository.ErrForbidden)
}
