package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/wanderpk/tour-booking-backend/internal/booking/http"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/response"
)

func validBookingBody() bookingHttp.CreateBookingBody {
	return bookingHttp.CreateBookingBody{
		FullName:        "Ayesha Khan",
		Phone:           "+92-300-1234567",
		EmergencyPhone:  "+92-300-7654321",
		CNIC:            "35202-1234567-1",
		Address:         "Lahore",
		TourCategory:    "adventure",
		TripPackage:     "Hunza & Skardu Explorer",
		MaleCount:       2,
		FemaleCount:     1,
		StartDate:       "2026-03-10",
		EndDate:         "2026-03-17",
		SpecialRequests: "Vegetarian meals",
	}
}

func TestBookingIntakeAndModeration(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@booking.test", "pass1234", true)
	member := createTestUser(t, "member@booking.test", "pass1234", false)
	adminToken := generateToken(admin.ID, admin.Email)
	memberToken := generateToken(member.ID, member.Email)

	var bookingID string

	t.Run("Public Intake", func(t *testing.T) {
		// No token: the landing-page form posts anonymously.
		w := executeRequest("POST", "/v1/bookings", validBookingBody(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, 3, created.TotalGuests)
		assert.Equal(t, 8, created.TripDays)
		assert.Equal(t, "Pending", created.Status)
		assert.Equal(t, "2026-03-10", created.StartDate)
		bookingID = created.ID
	})

	t.Run("Intake Rejections", func(t *testing.T) {
		zeroGuests := validBookingBody()
		zeroGuests.MaleCount, zeroGuests.FemaleCount, zeroGuests.ChildrenCount = 0, 0, 0
		w := executeRequest("POST", "/v1/bookings", zeroGuests, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		badRange := validBookingBody()
		badRange.StartDate, badRange.EndDate = badRange.EndDate, badRange.StartDate
		w = executeRequest("POST", "/v1/bookings", badRange, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		badDate := validBookingBody()
		badDate.StartDate = "10-03-2026"
		w = executeRequest("POST", "/v1/bookings", badDate, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		noName := validBookingBody()
		noName.FullName = ""
		w = executeRequest("POST", "/v1/bookings", noName, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// Nothing above may have been persisted.
		wList := executeRequest("GET", "/v1/admin/bookings", nil, adminToken)
		require.Equal(t, http.StatusOK, wList.Code)
		var page response.PageResponse[bookingHttp.BookingResponse]
		require.NoError(t, json.Unmarshal(wList.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Total)
	})

	t.Run("Admin Gate", func(t *testing.T) {
		w := executeRequest("GET", "/v1/admin/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = executeRequest("GET", "/v1/admin/bookings", nil, memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin List And Search", func(t *testing.T) {
		second := validBookingBody()
		second.FullName = "Bilal Ahmed"
		second.Phone = "+92-321-9999999"
		second.TripPackage = "Fairy Meadows Trek"
		w := executeRequest("POST", "/v1/bookings", second, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = executeRequest("GET", "/v1/admin/bookings?search=bilal", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var page response.PageResponse[bookingHttp.BookingResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Equal(t, 1, page.Total)
		assert.Equal(t, "Bilal Ahmed", page.Items[0].FullName)

		// Search also matches phone and package.
		w = executeRequest("GET", "/v1/admin/bookings?search=fairy", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Total)

		w = executeRequest("GET", "/v1/admin/bookings?status=Pending", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 2, page.Total)

		w = executeRequest("GET", "/v1/admin/bookings?status=bogus", nil, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Status Update", func(t *testing.T) {
		path := fmt.Sprintf("/v1/admin/bookings/%s/status", bookingID)

		w := executeRequest("PATCH", path, bookingHttp.UpdateStatusBody{Status: "Confirmed"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, "Confirmed", updated.Status)

		// Same status again is accepted.
		w = executeRequest("PATCH", path, bookingHttp.UpdateStatusBody{Status: "Confirmed"}, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		// Reverting a confirmed booking is refused.
		w = executeRequest("PATCH", path, bookingHttp.UpdateStatusBody{Status: "Pending"}, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = executeRequest("PATCH", path, bookingHttp.UpdateStatusBody{Status: "Cancelled"}, adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = executeRequest("PATCH", path, bookingHttp.UpdateStatusBody{Status: "Confirmed"}, memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Get And Delete", func(t *testing.T) {
		w := executeRequest("GET", "/v1/admin/bookings/"+bookingID, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = executeRequest("DELETE", "/v1/admin/bookings/"+bookingID, nil, adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = executeRequest("GET", "/v1/admin/bookings/"+bookingID, nil, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = executeRequest("DELETE", "/v1/admin/bookings/"+bookingID, nil, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Export", func(t *testing.T) {
		w := executeRequest("GET", "/v1/admin/bookings/export", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings-report.xlsx")
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			w.Header().Get("Content-Type"))
		assert.NotZero(t, w.Body.Len())

		w = executeRequest("GET", "/v1/admin/bookings/export", nil, memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
