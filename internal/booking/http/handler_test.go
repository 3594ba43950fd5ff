package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderpk/tour-booking-backend/internal/booking"
)

// streamServiceStub records the order of Watch and Snapshot calls. Only
// the methods Stream touches are implemented; everything else panics via
// the embedded nil interface.
type streamServiceStub struct {
	booking.Service
	hub   *booking.Hub
	calls []string
}

func (s *streamServiceStub) Snapshot(_ context.Context) ([]*booking.Booking, error) {
	s.calls = append(s.calls, "snapshot")
	return []*booking.Booking{
		{
			ID:           "b-1",
			FullName:     "Sana Iqbal",
			Phone:        "03001234567",
			TourCategory: "family",
			TripPackage:  "kaghan-valley-3days",
			MaleCount:    1,
			FemaleCount:  1,
			TotalGuests:  2,
			StartDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			TripDays:     3,
			Status:       booking.StatusPending,
		},
	}, nil
}

func (s *streamServiceStub) Watch() (<-chan []*booking.Booking, func()) {
	s.calls = append(s.calls, "watch")
	return s.hub.Subscribe()
}

// closeNotifyRecorder adds CloseNotify, which gin's Stream requires of
// the underlying writer and httptest.ResponseRecorder lacks.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestStreamSubscribesBeforeSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &streamServiceStub{hub: booking.NewHub()}
	router := gin.New()
	router.GET("/bookings/stream", NewHandler(stub).Stream)

	// A pre-canceled context makes the stream loop exit right after the
	// initial snapshot event.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/bookings/stream", nil).WithContext(ctx)
	rec := &closeNotifyRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}

	router.ServeHTTP(rec, req)

	// The subscription must be in place before the snapshot is read, or
	// a mutation landing between the two never reaches the client.
	require.Equal(t, []string{"watch", "snapshot"}, stub.calls)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, rec.Body.String(), "event:bookings")
	assert.Contains(t, rec.Body.String(), "kaghan-valley-3days")
	assert.Zero(t, stub.hub.SubscriberCount())
}
