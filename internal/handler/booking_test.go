package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
	"github.com/iliyamo/sports-ground-booking/internal/service"
)

type stubBookingStore struct{ mock.Mock }

func (m *stubBookingStore) Create(ctx context.Context, userID, slotID int64) (*model.Booking, error) {
	args := m.Called(ctx, userID, slotID)
	if b := args.Get(0); b != nil {
		return b.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBookingStore) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBookingStore) UpdateStatus(ctx context.Context, b *model.Booking, status string) (*model.Booking, error) {
	args := m.Called(ctx, b, status)
	if out := args.Get(0); out != nil {
		return out.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBookingStore) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if out := args.Get(0); out != nil {
		return out.([]*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBookingStore) ListByUser(ctx context.Context, userID int64) ([]*model.Booking, error) {
	args := m.Called(ctx, userID)
	if out := args.Get(0); out != nil {
		return out.([]*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *stubBookingStore) ListByGround(ctx context.Context, groundID int64) ([]*model.Booking, error) {
	args := m.Called(ctx, groundID)
	if out := args.Get(0); out != nil {
		return out.([]*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func newBookingTestContext(t *testing.T, method, path, body string, userID int64, admin bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("is_admin", admin)
	return c, rec
}

func newTestBookingHandler(store *stubBookingStore) *BookingHandler {
	logger := zerolog.Nop()
	svc := service.NewBookingService(store, nil, nil, nil, &logger)
	return NewBookingHandler(svc)
}

func TestBookingCreateHandler(t *testing.T) {
	store := new(stubBookingStore)
	h := newTestBookingHandler(store)
	store.On("Create", mock.Anything, int64(42), int64(7)).Return(&model.Booking{
		ID: 1, UserID: 42, SlotID: 7, BookingDate: time.Now().UTC(), Status: model.BookingConfirmed,
	}, nil)

	c, rec := newBookingTestContext(t, http.MethodPost, "/api/bookings", `{"slotId":7}`, 42, false)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Confirmed"`)
}

func TestBookingCreateHandlerSlotUnavailable(t *testing.T) {
	for _, storeErr := range []error{repository.ErrSlotUnavailable, repository.ErrSlotNotFound} {
		store := new(stubBookingStore)
		h := newTestBookingHandler(store)
		store.On("Create", mock.Anything, int64(42), int64(7)).Return(nil, storeErr)

		c, rec := newBookingTestContext(t, http.MethodPost, "/api/bookings", `{"slotId":7}`, 42, false)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Slot is not available for booking")
	}
}

func TestBookingCreateHandlerRejectsBadInput(t *testing.T) {
	store := new(stubBookingStore)
	h := newTestBookingHandler(store)

	c, rec := newBookingTestContext(t, http.MethodPost, "/api/bookings", `{"slotId":0}`, 42, false)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingUpdateStatusHandlerForbidden(t *testing.T) {
	store := new(stubBookingStore)
	h := newTestBookingHandler(store)
	store.On("GetByID", mock.Anything, int64(1)).Return(&model.Booking{
		ID: 1, UserID: 42, SlotID: 7, Status: model.BookingConfirmed,
	}, nil)

	c, rec := newBookingTestContext(t, http.MethodPut, "/api/bookings/1/status", `{"status":"Cancelled"}`, 99, false)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBookingUpdateStatusHandlerInvalidStatus(t *testing.T) {
	store := new(stubBookingStore)
	h := newTestBookingHandler(store)

	c, rec := newBookingTestContext(t, http.MethodPut, "/api/bookings/1/status", `{"status":"Done"}`, 42, false)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid status")
}

func TestBookingUpdateStatusHandlerNotFound(t *testing.T) {
	store := new(stubBookingStore)
	h := newTestBookingHandler(store)
	store.On("GetByID", mock.Anything, int64(5)).Return(nil, repository.ErrBookingNotFound)

	c, rec := newBookingTestContext(t, http.MethodPut, "/api/bookings/5/status", `{"status":"Cancelled"}`, 42, false)
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
