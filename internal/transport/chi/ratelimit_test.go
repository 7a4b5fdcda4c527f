package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	handler := RateLimitMiddleware(0, 0)(okHandler())

	for i := range 10 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/compare", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
}

func TestRateLimitMiddleware_RejectsOverBurst(t *testing.T) {
	// One token per hour: only the burst gets through.
	handler := RateLimitMiddleware(1.0/3600, 2)(okHandler())

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/compare", http.NoBody))
		codes = append(codes, rr.Code)
		last = rr
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests: got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request: got %d, want %d", codes[2], http.StatusTooManyRequests)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
	assertError(t, last, http.StatusTooManyRequests, ErrorCodeRateLimited)
}

func TestRateLimitMiddleware_ExemptPaths(t *testing.T) {
	handler := RateLimitMiddleware(1.0/3600, 1)(okHandler())

	for range 3 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("health: got %d, want %d", rr.Code, http.StatusOK)
		}
	}
}
