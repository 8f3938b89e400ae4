package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login": "admin", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "admin", "password123").
					Return(&domain.Operator{ID: 1, Login: "admin"}, nil)
				service.EXPECT().
					GenerateToken(1, "admin").
					Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:          "Invalid request body",
			body:          `{bad`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Password too short",
			body:          `{"login": "admin", "password": "short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Login already taken",
			body: `{"login": "admin", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "admin", "password123").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"login": "admin", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "admin", "password123").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Token generation failure",
			body: `{"login": "admin", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "admin", "password123").
					Return(&domain.Operator{ID: 1, Login: "admin"}, nil)
				service.EXPECT().
					GenerateToken(1, "admin").
					Return("", errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"login": "admin", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "admin", "password123").
					Return(&domain.Operator{ID: 1, Login: "admin"}, nil)
				service.EXPECT().
					GenerateToken(1, "admin").
					Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:          "Invalid request body",
			body:          `{bad`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid credentials",
			body: `{"login": "admin", "password": "wrongpass"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "admin", "wrongpass").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Token generation failure",
			body: `{"login": "admin", "password": "password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "admin", "password123").
					Return(&domain.Operator{ID: 1, Login: "admin"}, nil)
				service.EXPECT().
					GenerateToken(1, "admin").
					Return("", errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}
