package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/mkcho/brewstation/internal/handler/http/mocks"
	"github.com/mkcho/brewstation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockHandler_GetStock(t *testing.T) {
	tests := []struct {
		name  string
		query string
		setup func(t *testing.T) *mocks.MockStockService
		want  map[string]any
	}{
		{
			name:  "full_snapshot",
			query: "",
			setup: func(t *testing.T) *mocks.MockStockService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockStockService(ctrl)
				svcMock.EXPECT().Snapshot().Return(models.Snapshot{
					"stock_a": float64(5),
					"stock_b": float64(3),
				}, nil).AnyTimes()
				return svcMock
			},
			want: map[string]any{
				"stock_a": float64(5),
				"stock_b": float64(3),
			},
		},
		{
			name:  "single_reading",
			query: "?type=stock_a",
			setup: func(t *testing.T) *mocks.MockStockService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockStockService(ctrl)
				svcMock.EXPECT().Reading("stock_a").Return(float64(5), nil).AnyTimes()
				return svcMock
			},
			want: map[string]any{
				"stock_a": float64(5),
			},
		},
		{
			name:  "snapshot_absent",
			query: "",
			setup: func(t *testing.T) *mocks.MockStockService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockStockService(ctrl)
				svcMock.EXPECT().Snapshot().Return(nil, models.ErrNoSnapshot).AnyTimes()
				return svcMock
			},
			want: map[string]any{
				"status":  "error",
				"message": "no stock data available",
			},
		},
		{
			name:  "unknown_reading",
			query: "?type=stock_z",
			setup: func(t *testing.T) *mocks.MockStockService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockStockService(ctrl)
				svcMock.EXPECT().Reading("stock_z").Return(nil, models.ErrReadingNotFound).AnyTimes()
				return svcMock
			},
			want: map[string]any{
				"status":  "error",
				"message": "unknown stock type",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/stock"+tt.query, nil)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			h := NewStockHandler(tt.setup(t)).GetStock()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)

			var got map[string]any
			require.NoError(t, json.NewDecoder(res.Body).Decode(&got))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
