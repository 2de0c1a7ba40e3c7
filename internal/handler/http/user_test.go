package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mkcho/brewstation/internal/handler/http/mocks"
	"github.com/mkcho/brewstation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_RegisterUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockUserService
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "valid_request_return_200",
			body: `{"username":"alice","password":"secret"}`,
			setup: func(t *testing.T) *mocks.MockUserService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockUserService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), "alice", "secret").
					Return(&models.User{ID: 1, Username: "alice"}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantMessage:    "User registered successfully",
		},
		{
			name: "existing_username_return_400",
			body: `{"username":"alice","password":"secret"}`,
			setup: func(t *testing.T) *mocks.MockUserService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockUserService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), "alice", "secret").
					Return(nil, models.ErrConflictData).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "Username already exists",
		},
		{
			name: "empty_credentials_return_400",
			body: `{"username":"alice"}`,
			setup: func(t *testing.T) *mocks.MockUserService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockUserService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), "alice", "").
					Return(nil, models.ErrEmptyCredentials).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "invalid_body_return_400",
			body: `not json`,
			setup: func(t *testing.T) *mocks.MockUserService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockUserService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			require.NoError(t, err)

			w := httptest.NewRecorder()
			h := NewUserHandler(tt.setup(t)).RegisterUser()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantMessage != "" {
				var got statusResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				assert.Equal(t, tt.wantMessage, got.Message)
			}
		})
	}
}

func TestAuthHandler_LoginUser(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		setup          func(t *testing.T) *mocks.MockAuthService
		wantStatusCode int
		wantToken      string
	}{
		{
			name: "valid_credentials_return_token",
			form: url.Values{"username": {"alice"}, "password": {"secret"}},
			setup: func(t *testing.T) *mocks.MockAuthService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockAuthService(ctrl)
				svcMock.EXPECT().Login(gomock.Any(), "alice", "secret").
					Return("token123", nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantToken:      "token123",
		},
		{
			name: "invalid_credentials_return_400",
			form: url.Values{"username": {"alice"}, "password": {"wrong"}},
			setup: func(t *testing.T) *mocks.MockAuthService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockAuthService(ctrl)
				svcMock.EXPECT().Login(gomock.Any(), "alice", "wrong").
					Return("", models.ErrInvalidCredentials).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.form.Encode()))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := httptest.NewRecorder()
			h := NewAuthHandler(tt.setup(t)).LoginUser()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantToken != "" {
				var got tokenResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				assert.Equal(t, tt.wantToken, got.AccessToken)
				assert.Equal(t, "bearer", got.TokenType)
			}
		})
	}
}
