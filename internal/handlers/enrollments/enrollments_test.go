package enrollments

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/internal/dto"
)

func NewMock(t *testing.T) (*EnrollmentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful listing",
			prepareMock: func() {
				service.EXPECT().
					GetEnrollments(gomock.Any()).
					Return([]domain.Enrollment{
						{
							ID: 2, CourseID: "go-advanced", CustomerEmail: "s2@example.com",
							Amount: 250, PaymentID: "pay-2", Status: "paid", LMSStatus: "synced", CreatedAt: now,
							Attribution: &domain.Attribution{
								AffiliateEmail: "a@x.com", CommissionRate: 10, CommissionAmount: 25, Eligible: true,
							},
						},
						{
							ID: 1, CourseID: "go-fundamentals", CustomerEmail: "s1@example.com",
							Amount: 100, PaymentID: "pay-1", Status: "paid", LMSStatus: "pending", CreatedAt: now.Add(-time.Hour),
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No enrollments found",
			prepareMock: func() {
				service.EXPECT().
					GetEnrollments(gomock.Any()).
					Return([]domain.Enrollment{}, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "Enrollments not found",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetEnrollments(gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/enrollments", nil)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.EnrollmentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 2)
				assert.Equal(t, "synced", body[0].LMSStatus)
				assert.NotNil(t, body[0].Attribution)
				assert.Equal(t, 25.0, body[0].Attribution.CommissionAmount)
				assert.Nil(t, body[1].Attribution)
			}
		})
	}
}
