package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
	"github.com/coursepay/coursepay/internal/service/enrollmentservice"
)

const testKey = "whk_test"

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testKey)
	defer ctrl.Finish()
	return handler, service
}

func TestHandlePayment(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{
		"payment_id": "pay-1",
		"course_id": "go-fundamentals",
		"customer_email": "student@example.com",
		"amount": 100,
		"status": "paid",
		"affiliate_email": "a@x.com"
	}`
	wantParams := enrollmentservice.CreateParams{
		CourseID:      "go-fundamentals",
		CustomerEmail: "student@example.com",
		Amount:        100,
		PaymentID:     "pay-1",
		Status:        "paid",
		Attribution: &enrollmentservice.AttributionParams{
			AffiliateEmail: "a@x.com",
		},
	}

	tests := []struct {
		name          string
		key           string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful enrollment recording",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(&domain.Enrollment{ID: 1, PaymentID: "pay-1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Bad webhook key",
			key:           "wrong",
			body:          validBody,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid request body",
			key:           testKey,
			body:          "{bad json",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Unknown status rejected",
			key:           testKey,
			body:          `{"payment_id":"pay-1","course_id":"go-fundamentals","customer_email":"student@example.com","amount":100,"status":"refunded"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid payment payload",
		},
		{
			name: "Duplicate payment acked",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(nil, enrollmentservice.ErrDuplicatePayment)
			},
			expectedCode:  http.StatusOK,
			expectedError: "payment already recorded",
		},
		{
			name: "Customer already enrolled",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(nil, enrollmentservice.ErrDuplicateEnrollment)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown affiliate",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(nil, enrollmentservice.ErrUnknownAffiliate)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Commission mismatch",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(nil, enrollmentservice.ErrCommissionMismatch)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid amount",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(nil, enrollmentservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			key:  testKey,
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), wantParams).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewBufferString(tt.body))
			r.Header.Set(KeyHeader, tt.key)
			w := httptest.NewRecorder()

			handler.HandlePayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.PaymentWebhookResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 1, body.EnrollmentID)
			}
		})
	}
}

func TestHandlePaymentWithoutAttribution(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Create(gomock.Any(), enrollmentservice.CreateParams{
			CourseID:      "go-fundamentals",
			CustomerEmail: "student@example.com",
			Amount:        100,
			PaymentID:     "pay-2",
			Status:        "paid",
		}).
		Return(&domain.Enrollment{ID: 2, PaymentID: "pay-2"}, nil)

	body := `{"payment_id":"pay-2","course_id":"go-fundamentals","customer_email":"student@example.com","amount":100,"status":"paid"}`
	r := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewBufferString(body))
	r.Header.Set(KeyHeader, testKey)
	w := httptest.NewRecorder()

	handler.HandlePayment(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}
