package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categoryHttp "github.com/wanderpk/tour-booking-backend/internal/category/http"
	contactHttp "github.com/wanderpk/tour-booking-backend/internal/contact/http"
	"github.com/wanderpk/tour-booking-backend/internal/pkg/response"
	tripHttp "github.com/wanderpk/tour-booking-backend/internal/trip/http"
)

func TestTripCatalog(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@catalog.test", "pass1234", true)
	adminToken := generateToken(admin.ID, admin.Email)

	t.Run("Empty Table Serves Defaults", func(t *testing.T) {
		w := executeRequest("GET", "/v1/trips", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[tripHttp.TripResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.NotZero(t, page.Total)
		assert.Equal(t, "hunza-skardu-8days", page.Items[0].Slug)
	})

	var createdID string

	t.Run("Admin Create", func(t *testing.T) {
		body := tripHttp.CreateTripBody{
			Name:         "Kaghan Valley Tour",
			Slug:         "kaghan-valley-3days",
			Category:     "family",
			DurationDays: 3,
			Price:        decimal.NewFromInt(55000),
			Highlights:   []string{"Saif ul Malook lake", "Babusar top"},
			Difficulty:   "easy",
		}
		w := executeRequest("POST", "/v1/admin/trips", body, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created tripHttp.TripResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "kaghan-valley-3days", created.Slug)
		createdID = created.ID

		// Duplicate slug is refused.
		w = executeRequest("POST", "/v1/admin/trips", body, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Stored Trips Replace Defaults", func(t *testing.T) {
		w := executeRequest("GET", "/v1/trips", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[tripHttp.TripResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Equal(t, 1, page.Total)
		assert.Equal(t, "kaghan-valley-3days", page.Items[0].Slug)
	})

	t.Run("Filter Miss Stays Empty", func(t *testing.T) {
		// The table is non-empty, so a filter matching nothing must
		// return an empty page, not the compiled-in defaults.
		w := executeRequest("GET", "/v1/trips?category=adventure", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[tripHttp.TripResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Items)
	})

	t.Run("Get By Slug", func(t *testing.T) {
		w := executeRequest("GET", "/v1/trips/kaghan-valley-3days", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = executeRequest("GET", "/v1/trips/no-such-trip", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Admin Update And Delete", func(t *testing.T) {
		newPrice := decimal.NewFromInt(60000)
		w := executeRequest("PATCH", "/v1/admin/trips/"+createdID,
			tripHttp.UpdateTripBody{Price: &newPrice}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated tripHttp.TripResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.True(t, updated.Price.Equal(newPrice))

		w = executeRequest("DELETE", "/v1/admin/trips/"+createdID, nil, adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = executeRequest("GET", "/v1/trips/kaghan-valley-3days", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Admin Routes Are Gated", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/trips", tripHttp.CreateTripBody{}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCategoryAdmin(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@category.test", "pass1234", true)
	adminToken := generateToken(admin.ID, admin.Email)

	var createdID string

	t.Run("Create", func(t *testing.T) {
		w := executeRequest("POST", "/v1/admin/categories", categoryHttp.CreateCategoryBody{
			Name: "Adventure Tours",
			Key:  " Adventure ",
		}, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created categoryHttp.CategoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "adventure", created.Key)
		createdID = created.ID

		// Key uniqueness is case-insensitive via normalization.
		w = executeRequest("POST", "/v1/admin/categories", categoryHttp.CreateCategoryBody{
			Name: "More Adventure",
			Key:  "ADVENTURE",
		}, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Public List", func(t *testing.T) {
		w := executeRequest("GET", "/v1/categories", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "adventure")
	})

	t.Run("Update And Delete", func(t *testing.T) {
		newName := "Adventure & Trekking"
		w := executeRequest("PATCH", "/v1/admin/categories/"+createdID,
			categoryHttp.UpdateCategoryBody{Name: &newName}, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = executeRequest("DELETE", "/v1/admin/categories/"+createdID, nil, adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = executeRequest("DELETE", "/v1/admin/categories/"+createdID, nil, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContactInbox(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@contact.test", "pass1234", true)
	adminToken := generateToken(admin.ID, admin.Email)

	t.Run("Public Submit", func(t *testing.T) {
		w := executeRequest("POST", "/v1/contact", contactHttp.CreateMessageBody{
			Name:    "Sara",
			Email:   "sara@example.com",
			Message: "Do you run winter tours?",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("Submit Without Reply Channel", func(t *testing.T) {
		w := executeRequest("POST", "/v1/contact", contactHttp.CreateMessageBody{
			Name:    "Sara",
			Message: "No email, no phone",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Admin Inbox", func(t *testing.T) {
		w := executeRequest("GET", "/v1/admin/contact", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[contactHttp.MessageResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Equal(t, 1, page.Total)

		w = executeRequest("DELETE", "/v1/admin/contact/"+page.Items[0].ID, nil, adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
