//go:build e2e

package loyalty_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync"

	"punchcard/tests/common/dbtest"
	"punchcard/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// do issues a request without test assertions so it is safe to call
// from spawned goroutines; results are checked on the main goroutine.
func (s *LoyaltySuite) do(method, url string, body []byte, token string) *stdhttptest.ResponseRecorder {
	req := stdhttptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := stdhttptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *LoyaltySuite) fetchBalance(businessID uuid.UUID, token string) float64 {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		pointsURL+"?business_id="+businessID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var balance map[string]any
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
	return balance["total_points"].(float64)
}

// =============================================================================
// TestConcurrency - racing scans and redemptions against single rows
// =============================================================================

func (s *LoyaltySuite) TestConcurrency() {
	s.Run("Normal case: one code under racing scans awards exactly once", func() {
		t := s.T()
		const workers = 8

		businessID := dbtest.CreateTestBusiness(t, s.DB, "Corner Cafe", "points")
		clientID := uuid.New()
		clientTok := s.clientToken(clientID)
		staffTok := s.staffToken(uuid.New(), businessID)

		code := s.fetchCode(clientTok)
		body, err := json.Marshal(map[string]any{"data": code, "amount": 25})
		require.NoError(t, err)

		statuses := make([]int, workers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				statuses[i] = s.do(http.MethodPost, scanURL, body, staffTok).Code
			}(i)
		}
		close(start)
		wg.Wait()

		var awarded, rejected int
		for _, code := range statuses {
			switch code {
			case http.StatusOK:
				awarded++
			case http.StatusBadRequest:
				rejected++
			}
		}
		require.Equal(t, 1, awarded, "Exactly one racing scan should win: %v", statuses)
		require.Equal(t, workers-1, rejected, "Losers should see a used-code rejection: %v", statuses)

		require.Equal(t, float64(25), s.fetchBalance(businessID, clientTok))
	})

	s.Run("Normal case: racing awards with distinct codes all land", func() {
		t := s.T()
		const workers = 6

		businessID := dbtest.CreateTestBusiness(t, s.DB, "Corner Cafe", "points")
		staffTok := s.staffToken(uuid.New(), businessID)

		tokens := make([]string, workers)
		bodies := make([][]byte, workers)
		for i := 0; i < workers; i++ {
			tokens[i] = s.clientToken(uuid.New())
			code := s.fetchCode(tokens[i])
			body, err := json.Marshal(map[string]any{"data": code, "amount": 10})
			require.NoError(t, err)
			bodies[i] = body
		}

		statuses := make([]int, workers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				statuses[i] = s.do(http.MethodPost, scanURL, bodies[i], staffTok).Code
			}(i)
		}
		close(start)
		wg.Wait()

		var total float64
		for i, code := range statuses {
			require.Equal(t, http.StatusOK, code, "Award %d should succeed", i)
			total += s.fetchBalance(businessID, tokens[i])
		}
		require.Equal(t, float64(workers*10), total, "No award may be lost")
	})

	s.Run("Normal case: racing redemptions never overdraw the balance", func() {
		t := s.T()
		const workers = 6
		const winners = 4

		businessID := dbtest.CreateTestBusiness(t, s.DB, "Corner Cafe", "points")
		couponID := dbtest.CreateTestCoupon(t, s.DB, businessID, "Free Coffee", 10)
		clientID := uuid.New()
		clientTok := s.clientToken(clientID)

		dbtest.SeedPointBalance(t, s.DB, clientID, businessID, winners*10)

		body, err := json.Marshal(map[string]any{"coupon_id": couponID.String()})
		require.NoError(t, err)

		statuses := make([]int, workers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				statuses[i] = s.do(http.MethodPost, redeemURL, body, clientTok).Code
			}(i)
		}
		close(start)
		wg.Wait()

		var redeemed, refused int
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				redeemed++
			case http.StatusBadRequest:
				refused++
			}
		}
		require.Equal(t, winners, redeemed, "The balance funds exactly %d redemptions: %v", winners, statuses)
		require.Equal(t, workers-winners, refused, "The rest must be refused: %v", statuses)

		require.Equal(t, float64(0), s.fetchBalance(businessID, clientTok))
	})
}
