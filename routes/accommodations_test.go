package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func searchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/accommodations/search", searchAccommodations)
	return router
}

func TestSearchRequiresBothDates(t *testing.T) {
	router := searchRouter()

	for _, url := range []string{
		"/api/accommodations/search",
		"/api/accommodations/search?checkIn=2024-08-10",
		"/api/accommodations/search?checkOut=2024-08-12",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, url, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, url)
		assert.Contains(t, w.Body.String(), "checkIn and checkOut are required")
	}
}

func TestSearchRejectsMalformedDates(t *testing.T) {
	router := searchRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/api/accommodations/search?checkIn=10-08-2024&checkOut=2024-08-12", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsInvertedRange(t *testing.T) {
	router := searchRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/api/accommodations/search?checkIn=2024-08-12&checkOut=2024-08-10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "check-in must be before check-out")
}

func TestSearchRejectsSameDayRange(t *testing.T) {
	router := searchRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet,
		"/api/accommodations/search?checkIn=2024-08-10&checkOut=2024-08-10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
