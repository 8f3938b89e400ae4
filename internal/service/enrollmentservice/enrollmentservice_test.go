package enrollmentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockAffiliateDirectory, *MockAggregateRefresher, *MockCourseNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	directory := NewMockAffiliateDirectory(ctrl)
	refresher := NewMockAggregateRefresher(ctrl)
	courses := NewMockCourseNotifier(ctrl)
	service := New(repo, directory, refresher, courses)
	defer ctrl.Finish()
	return service, repo, directory, refresher, courses
}

func float64Ptr(v float64) *float64 { return &v }

func TestCreate(t *testing.T) {
	service, repo, directory, refresher, courses := NewMock(t)

	affiliate := &domain.Affiliate{ID: 7, Email: "a@x.com", CommissionRate: 10}

	tests := []struct {
		name          string
		params        CreateParams
		prepareMock   func()
		check         func(t *testing.T, enrollment *domain.Enrollment)
		expectedError error
	}{
		{
			name: "Duplicate payment is rejected without writing",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-1",
				Status:        PaidStatus,
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-1").Return(&domain.Enrollment{ID: 1}, nil)
			},
			expectedError: ErrDuplicatePayment,
		},
		{
			name: "Customer already has a live enrollment",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-2",
				Status:        PaidStatus,
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-2").Return(nil, nil)
				repo.EXPECT().FindLive(gomock.Any(), "student@example.com", "go-fundamentals").Return(&domain.Enrollment{ID: 1}, nil)
			},
			expectedError: ErrDuplicateEnrollment,
		},
		{
			name: "Failed payment skips the live-enrollment check",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-3",
				Status:        FailedStatus,
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-3").Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, enrollment *domain.Enrollment) {
				assert.Equal(t, FailedStatus, enrollment.Status)
				assert.Equal(t, LMSNone, enrollment.LMSStatus)
				assert.Nil(t, enrollment.Attribution)
			},
		},
		{
			name: "Unknown affiliate",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-4",
				Status:        PaidStatus,
				Attribution:   &AttributionParams{AffiliateEmail: "ghost@x.com"},
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-4").Return(nil, nil)
				repo.EXPECT().FindLive(gomock.Any(), "student@example.com", "go-fundamentals").Return(nil, nil)
				directory.EXPECT().FindByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)
			},
			expectedError: ErrUnknownAffiliate,
		},
		{
			name: "Claimed commission does not match the rate",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-5",
				Status:        PaidStatus,
				Attribution: &AttributionParams{
					AffiliateEmail:   "a@x.com",
					CommissionAmount: float64Ptr(25),
				},
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-5").Return(nil, nil)
				repo.EXPECT().FindLive(gomock.Any(), "student@example.com", "go-fundamentals").Return(nil, nil)
				directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
			},
			expectedError: ErrCommissionMismatch,
		},
		{
			name: "Commission is computed from the affiliate rate",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "Student@Example.Com",
				Amount:        100,
				PaymentID:     "pay-6",
				Status:        PaidStatus,
				Attribution:   &AttributionParams{AffiliateEmail: "a@x.com"},
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-6").Return(nil, nil)
				repo.EXPECT().FindLive(gomock.Any(), "student@example.com", "go-fundamentals").Return(nil, nil)
				directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				refresher.EXPECT().RefreshAggregate(gomock.Any(), "a@x.com").Return(affiliate, nil)
				courses.EXPECT().EnrollmentRecorded(gomock.Any(), "go-fundamentals").Return(nil)
			},
			check: func(t *testing.T, enrollment *domain.Enrollment) {
				assert.Equal(t, "student@example.com", enrollment.CustomerEmail)
				assert.Equal(t, LMSPending, enrollment.LMSStatus)
				assert.NotNil(t, enrollment.Attribution)
				assert.Equal(t, 10.0, enrollment.Attribution.CommissionAmount)
				assert.True(t, enrollment.Attribution.Eligible)
				assert.False(t, enrollment.Attribution.Paid)
			},
		},
		{
			name: "Override rate takes precedence over the affiliate default",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        200,
				PaymentID:     "pay-7",
				Status:        PaidStatus,
				Attribution: &AttributionParams{
					AffiliateEmail: "a@x.com",
					CommissionRate: float64Ptr(15),
				},
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-7").Return(nil, nil)
				repo.EXPECT().FindLive(gomock.Any(), "student@example.com", "go-fundamentals").Return(nil, nil)
				directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				refresher.EXPECT().RefreshAggregate(gomock.Any(), "a@x.com").Return(affiliate, nil)
				courses.EXPECT().EnrollmentRecorded(gomock.Any(), "go-fundamentals").Return(nil)
			},
			check: func(t *testing.T, enrollment *domain.Enrollment) {
				assert.Equal(t, 15.0, enrollment.Attribution.CommissionRate)
				assert.Equal(t, 30.0, enrollment.Attribution.CommissionAmount)
			},
		},
		{
			name: "Side effect failures do not fail the create",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-8",
				Status:        PaidStatus,
				Attribution:   &AttributionParams{AffiliateEmail: "a@x.com"},
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-8").Return(nil, nil)
				repo.EXPECT().FindLive(gomock.Any(), "student@example.com", "go-fundamentals").Return(nil, nil)
				directory.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				refresher.EXPECT().RefreshAggregate(gomock.Any(), "a@x.com").Return(nil, errors.New("refresh failed"))
				courses.EXPECT().EnrollmentRecorded(gomock.Any(), "go-fundamentals").Return(errors.New("notify failed"))
			},
			check: func(t *testing.T, enrollment *domain.Enrollment) {
				assert.NotNil(t, enrollment.Attribution)
			},
		},
		{
			name: "Negative amount",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        -1,
				PaymentID:     "pay-9",
				Status:        PaidStatus,
			},
			expectedError: ErrInvalidAmount,
		},
		{
			name: "Fractional cent amount",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        99.999,
				PaymentID:     "pay-10",
				Status:        PaidStatus,
			},
			expectedError: ErrInvalidAmount,
		},
		{
			name: "Unknown status",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-11",
				Status:        "refunded",
			},
			expectedError: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			enrollment, err := service.Create(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, enrollment)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, enrollment)
				if tt.check != nil {
					tt.check(t, enrollment)
				}
			}
		})
	}
}

func TestCreateSettlesPending(t *testing.T) {
	service, repo, _, refresher, courses := NewMock(t)

	pending := func(id int) *domain.Enrollment {
		return &domain.Enrollment{
			ID:            id,
			CourseID:      "go-fundamentals",
			CustomerEmail: "student@example.com",
			Amount:        100,
			PaymentID:     "pay-20",
			Status:        PendingStatus,
			LMSStatus:     LMSNone,
			Attribution: &domain.Attribution{
				AffiliateID:      7,
				AffiliateEmail:   "a@x.com",
				CommissionRate:   10,
				CommissionAmount: 10,
				Eligible:         true,
			},
		}
	}
	params := CreateParams{
		CourseID:      "go-fundamentals",
		CustomerEmail: "student@example.com",
		Amount:        100,
		PaymentID:     "pay-20",
		Status:        PaidStatus,
	}

	tests := []struct {
		name          string
		params        CreateParams
		prepareMock   func()
		check         func(t *testing.T, enrollment *domain.Enrollment)
		expectedError error
	}{
		{
			name:   "Paid delivery settles a pending entry",
			params: params,
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-20").Return(pending(31), nil)
				repo.EXPECT().SettlePending(gomock.Any(), 31).Return(int64(1), nil)
				refresher.EXPECT().RefreshAggregate(gomock.Any(), "a@x.com").Return(&domain.Affiliate{ID: 7}, nil)
				courses.EXPECT().EnrollmentRecorded(gomock.Any(), "go-fundamentals").Return(nil)
			},
			check: func(t *testing.T, enrollment *domain.Enrollment) {
				assert.Equal(t, 31, enrollment.ID)
				assert.Equal(t, PaidStatus, enrollment.Status)
				assert.Equal(t, LMSPending, enrollment.LMSStatus)
				assert.NotNil(t, enrollment.Attribution)
				assert.Equal(t, 10.0, enrollment.Attribution.CommissionAmount)
				assert.False(t, enrollment.Attribution.Paid)
			},
		},
		{
			name:   "Settled entry stays settled under concurrent deliveries",
			params: params,
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-20").Return(pending(32), nil)
				repo.EXPECT().SettlePending(gomock.Any(), 32).Return(int64(0), nil)
			},
			expectedError: ErrDuplicatePayment,
		},
		{
			name: "Repeated pending delivery is still a duplicate",
			params: CreateParams{
				CourseID:      "go-fundamentals",
				CustomerEmail: "student@example.com",
				Amount:        100,
				PaymentID:     "pay-20",
				Status:        PendingStatus,
			},
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-20").Return(pending(33), nil)
			},
			expectedError: ErrDuplicatePayment,
		},
		{
			name:   "Settlement write failure propagates",
			params: params,
			prepareMock: func() {
				repo.EXPECT().FindByPaymentID(gomock.Any(), "pay-20").Return(pending(34), nil)
				repo.EXPECT().SettlePending(gomock.Any(), 34).Return(int64(0), errors.New("connection reset"))
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			enrollment, err := service.Create(context.Background(), tt.params)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, enrollment)
			case tt.check != nil:
				assert.NoError(t, err)
				assert.NotNil(t, enrollment)
				tt.check(t, enrollment)
			default:
				assert.Error(t, err)
				assert.Nil(t, enrollment)
			}
		})
	}
}

func TestGetEnrollments(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name: "Returns all ledger entries",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Enrollment{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCount: 2,
		},
		{
			name: "Repo failure is propagated",
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			enrollments, err := service.GetEnrollments(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, enrollments, tt.expectedCount)
			}
		})
	}
}

func TestGetAffiliateEnrollments(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	repo.EXPECT().FindPaidByAffiliate(gomock.Any(), 7).Return([]domain.Enrollment{{ID: 1}}, nil)

	enrollments, err := service.GetAffiliateEnrollments(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, enrollments, 1)
}
