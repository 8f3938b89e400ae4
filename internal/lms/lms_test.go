package lms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/coursepay/coursepay/internal/config"
	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *clients.MockHTTPClientI) {
	cfg := &config.Config{LMSAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	enrollmentRepo := NewMockRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, enrollmentRepo, client)
	return service, enrollmentRepo, client
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processEnrollments(t *testing.T) {
	tests := []struct {
		name                string
		mockFindEnrollments func(ctx context.Context, limit uint32) ([]domain.Enrollment, error)
		mockAddTask         func(ctx context.Context, task Task) error
		expectedErr         error
		enrollmentCount     int
	}{
		{
			name: "successfully queues enrollments",
			mockFindEnrollments: func(ctx context.Context, limit uint32) ([]domain.Enrollment, error) {
				return []domain.Enrollment{
					{ID: 11, CourseID: "go-fundamentals", CustomerEmail: "s1@example.com", PaymentID: "pay-11"},
					{ID: 12, CourseID: "go-advanced", CustomerEmail: "s2@example.com", PaymentID: "pay-12"},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:     nil,
			enrollmentCount: 2,
		},
		{
			name: "fails when finding enrollments",
			mockFindEnrollments: func(ctx context.Context, limit uint32) ([]domain.Enrollment, error) {
				return nil, fmt.Errorf("failed to fetch enrollments for LMS sync")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:     fmt.Errorf("failed to fetch enrollments for LMS sync"),
			enrollmentCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindEnrollments: func(ctx context.Context, limit uint32) ([]domain.Enrollment, error) {
				return []domain.Enrollment{
					{ID: 13, CourseID: "go-fundamentals", CustomerEmail: "s3@example.com", PaymentID: "pay-13"},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			expectedErr:     fmt.Errorf("failed to add task to worker pool"),
			enrollmentCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			enrollmentRepo := NewMockRepo(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			enrollmentRepo.EXPECT().
				FindForLMSSync(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindEnrollments).
				Times(1)
			for i := 0; i < tt.enrollmentCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				enrollmentRepo: enrollmentRepo,
				workerPool:     workerPool,
				limit:          2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processEnrollments(ctx)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}

func TestService_handleEnrollment(t *testing.T) {
	testCases := []struct {
		name           string
		enrollment     domain.Enrollment
		httpStatus     int
		responseBody   string
		expectedStatus string
		expectedError  string
		cancelContext  bool
		retryError     error
		retryHeaders   http.Header
	}{
		{
			name:           "Successful provisioning",
			enrollment:     domain.Enrollment{ID: 1, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-1"},
			httpStatus:     http.StatusCreated,
			responseBody:   `{"payment_id":"pay-1","status":"active"}`,
			expectedStatus: StatusSynced,
		},
		{
			name:          "Context canceled",
			enrollment:    domain.Enrollment{ID: 2, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-2"},
			expectedError: context.Canceled.Error(),
			cancelContext: true,
		},
		{
			name:           "Failed after retries",
			enrollment:     domain.Enrollment{ID: 3, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-3"},
			expectedStatus: StatusFailed,
			expectedError:  "failed to sync enrollment 3 after 3 retries: connection refused",
			retryError:     errors.New("connection refused"),
		},
		{
			name:           "LMS unavailable after retries",
			enrollment:     domain.Enrollment{ID: 4, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-4"},
			httpStatus:     http.StatusBadGateway,
			expectedStatus: StatusFailed,
			expectedError:  "LMS unavailable for enrollment 4 after 3 retries",
		},
		{
			name:           "Unexpected status code",
			enrollment:     domain.Enrollment{ID: 5, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-5"},
			httpStatus:     http.StatusTeapot,
			expectedStatus: StatusFailed,
			expectedError:  "unexpected status code from LMS",
		},
		{
			name:          "Payment id mismatch",
			enrollment:    domain.Enrollment{ID: 6, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-6"},
			httpStatus:    http.StatusOK,
			responseBody:  `{"payment_id":"pay-9","status":"active"}`,
			expectedError: "payment id mismatch: expected pay-6, got pay-9",
		},
		{
			name:         "Rate limit handling",
			enrollment:   domain.Enrollment{ID: 7, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-7"},
			httpStatus:   http.StatusTooManyRequests,
			retryHeaders: http.Header{"Retry-After": []string{"1"}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service, enrollmentRepo, client := NewMock(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if tt.cancelContext {
				cancel()
			} else if tt.retryError != nil {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, nil, tt.retryError).Times(3)
			} else if tt.httpStatus == http.StatusBadGateway {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(3)
			} else if tt.retryHeaders != nil {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), tt.retryHeaders, nil).Times(1)
			} else {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(1)
			}

			if tt.expectedStatus != "" {
				enrollmentRepo.EXPECT().
					UpdateLMSStatus(gomock.Any(), tt.enrollment.ID, tt.expectedStatus).
					Return(nil).
					Times(1)
			}

			err := service.handleEnrollment(ctx, tt.enrollment)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_confirmProvision(t *testing.T) {
	service, enrollmentRepo, _ := NewMock(t)

	enrollment := domain.Enrollment{ID: 1, CourseID: "go-fundamentals", CustomerEmail: "student@example.com", PaymentID: "pay-1"}

	testCases := []struct {
		name      string
		respBody  []byte
		updateErr error
		expectErr bool
	}{
		{
			name:     "Marks enrollment synced",
			respBody: []byte(`{"payment_id":"pay-1","status":"active"}`),
		},
		{
			name:      "Error parsing response body",
			respBody:  []byte(`{invalid json}`),
			expectErr: true,
		},
		{
			name:      "Error updating sync status",
			respBody:  []byte(`{"payment_id":"pay-1","status":"active"}`),
			updateErr: errors.New("database error"),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.respBody) != `{invalid json}` {
				enrollmentRepo.EXPECT().
					UpdateLMSStatus(gomock.Any(), enrollment.ID, StatusSynced).
					Return(tc.updateErr)
			}

			err := service.confirmProvision(context.Background(), enrollment, tc.respBody)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_handleRateLimit(t *testing.T) {
	service, _, _ := NewMock(t)

	enrollment := domain.Enrollment{ID: 1, PaymentID: "pay-1"}
	attempt := 1

	headers := http.Header{}
	headers.Set("Retry-After", "1")

	start := time.Now()
	err := service.handleRateLimit(enrollment, headers, attempt)
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 1*time.Second)
	assert.LessOrEqual(t, elapsed, 2*time.Second)

	headers = http.Header{}
	start = time.Now()
	err = service.handleRateLimit(enrollment, headers, attempt)
	elapsed = time.Since(start)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, retryInterval*time.Duration(attempt))
	assert.LessOrEqual(t, elapsed, retryInterval*time.Duration(attempt)+time.Second)
}
