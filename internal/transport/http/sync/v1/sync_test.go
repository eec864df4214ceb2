package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/ge-sync/internal/converter"
	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/internal/transport/http/sync/v1/mocks"
	"github.com/you-humble/ge-sync/platform/logger"
)

func TestSyncHandler(t *testing.T) {
	logger.SetNopLogger()
	t.Parallel()

	runID := uuid.New()

	type testCase struct {
		name     string
		path     string
		setup    func(m *mocks.MockSyncRunner)
		wantCode int
		assert   func(t *testing.T, body []byte)
	}

	tests := []testCase{
		{
			name: "orders run",
			path: "/api/v1/sync/orders",
			setup: func(m *mocks.MockSyncRunner) {
				m.On("Run", mock.Anything, model.SyncRequest{Flow: model.FlowOrders}).Return(model.SyncResult{
					RunID:    runID,
					Flow:     model.FlowOrders,
					Success:  true,
					Stats:    model.SyncStats{NewItems: 2},
					Duration: time.Second,
					Log:      []string{"Chunk 10/01/2025-10/07/2025: saved 2 orders (2 new, 0 updated)"},
				}, nil).Once()
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var got converter.SyncResultDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, runID.String(), got.RunID)
				assert.True(t, got.Success)
				assert.Equal(t, 2, got.Stats.NewItems)
				assert.Equal(t, int64(1000), got.DurationMs)
				assert.Len(t, got.Log, 1)
			},
		},
		{
			name: "failed sync still answers 200",
			path: "/api/v1/sync/inbound",
			setup: func(m *mocks.MockSyncRunner) {
				m.On("Run", mock.Anything, model.SyncRequest{Flow: model.FlowInbound}).
					Return(model.SyncResult{Flow: model.FlowInbound, Error: "boom"}, nil).Once()
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var got converter.SyncResultDTO
				require.NoError(t, json.Unmarshal(body, &got))
				assert.False(t, got.Success)
				assert.Equal(t, "boom", got.Error)
			},
		},
		{
			name: "inventory type is upper-cased",
			path: "/api/v1/sync/inventory/asis",
			setup: func(m *mocks.MockSyncRunner) {
				m.On("Run", mock.Anything, model.SyncRequest{Flow: model.FlowInventory, InventoryType: model.InventoryTypeASIS}).
					Return(model.SyncResult{Flow: model.FlowInventory, Success: true}, nil).Once()
			},
			wantCode: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"inventoryType":"ASIS"`)
			},
		},
		{
			name: "bad inventory type",
			path: "/api/v1/sync/inventory/xx",
			setup: func(m *mocks.MockSyncRunner) {
				m.On("Run", mock.Anything, mock.Anything).
					Return(model.SyncResult{}, fmt.Errorf("runner.Run: %w", model.ErrValidation)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "sync already running",
			path: "/api/v1/sync/orders",
			setup: func(m *mocks.MockSyncRunner) {
				m.On("Run", mock.Anything, mock.Anything).
					Return(model.SyncResult{}, fmt.Errorf("runner.Run: orders: %w", model.ErrSyncInProgress)).Once()
			},
			wantCode: http.StatusConflict,
			assert: func(t *testing.T, body []byte) {
				var got errorResponse
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, http.StatusConflict, got.Code)
				assert.Contains(t, got.Message, "sync already in progress")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := mocks.NewMockSyncRunner(t)
			tt.setup(runner)

			r := chi.NewRouter()
			r.Route("/api/v1/sync", NewSyncHandler(runner).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.assert != nil {
				tt.assert(t, rec.Body.Bytes())
			}
		})
	}
}
