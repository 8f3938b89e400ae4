package affiliateservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockAffiliateRepo, *MockEnrollmentRepo) {
	ctrl := gomock.NewController(t)
	affiliateRepo := NewMockAffiliateRepo(ctrl)
	enrollmentRepo := NewMockEnrollmentRepo(ctrl)
	service := New(affiliateRepo, enrollmentRepo)
	defer ctrl.Finish()
	return service, affiliateRepo, enrollmentRepo
}

func paidEnrollment(id int, commission float64, eligible, paid bool) domain.Enrollment {
	return domain.Enrollment{
		ID:            id,
		CourseID:      "go-fundamentals",
		CustomerEmail: "student@example.com",
		Status:        "paid",
		CreatedAt:     time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Attribution: &domain.Attribution{
			AffiliateID:      7,
			AffiliateEmail:   "a@x.com",
			CommissionAmount: commission,
			Eligible:         eligible,
			Paid:             paid,
		},
	}
}

func TestRegister(t *testing.T) {
	service, affiliateRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		rate          float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Registers with normalized email",
			email: "  A@X.Com ",
			rate:  10,
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
				affiliateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.Affiliate) (*domain.Affiliate, error) {
						assert.Equal(t, "a@x.com", a.Email)
						a.ID = 7
						return a, nil
					})
			},
		},
		{
			name:          "Rejects a malformed email",
			email:         "not-an-email",
			rate:          10,
			expectedError: ErrInvalidEmail,
		},
		{
			name:          "Rejects a rate above 100",
			email:         "a@x.com",
			rate:          150,
			expectedError: ErrInvalidRate,
		},
		{
			name:  "Rejects a duplicate",
			email: "a@x.com",
			rate:  10,
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(&domain.Affiliate{ID: 7}, nil)
			},
			expectedError: ErrAffiliateExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			affiliate, err := service.Register(context.Background(), tt.email, "Alex Partner", tt.rate)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, affiliate)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, affiliate)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, affiliateRepo, _ := NewMock(t)

	affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
	_, err := service.Get(context.Background(), "A@X.com")
	assert.ErrorIs(t, err, ErrAffiliateNotFound)

	affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(&domain.Affiliate{ID: 7}, nil)
	affiliate, err := service.Get(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, 7, affiliate.ID)
}

func TestRefreshAggregate(t *testing.T) {
	service, affiliateRepo, enrollmentRepo := NewMock(t)

	affiliate := &domain.Affiliate{ID: 7, Email: "a@x.com", CommissionRate: 10}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedPending float64
		expectedError   error
	}{
		{
			name: "Pending sums only unpaid eligible commissions",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				enrollmentRepo.EXPECT().FindPaidByAffiliate(gomock.Any(), 7).Return([]domain.Enrollment{
					paidEnrollment(1, 10, true, false),
					paidEnrollment(2, 20, true, false),
					paidEnrollment(3, 5, true, true),
					paidEnrollment(4, 9, false, false),
				}, nil)
				affiliateRepo.EXPECT().UpdateAggregates(gomock.Any(), 7, 30.0, 4).
					Return(&domain.Affiliate{ID: 7, PendingCommissions: 30, TotalReferrals: 4}, nil)
			},
			expectedPending: 30,
		},
		{
			name: "No referrals yields a zero aggregate",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				enrollmentRepo.EXPECT().FindPaidByAffiliate(gomock.Any(), 7).Return(nil, nil)
				affiliateRepo.EXPECT().UpdateAggregates(gomock.Any(), 7, 0.0, 0).
					Return(&domain.Affiliate{ID: 7}, nil)
			},
			expectedPending: 0,
		},
		{
			name: "Unknown affiliate",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
			},
			expectedError: ErrAffiliateNotFound,
		},
		{
			name: "Ledger read failure is propagated",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				enrollmentRepo.EXPECT().FindPaidByAffiliate(gomock.Any(), 7).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			updated, err := service.RefreshAggregate(context.Background(), "a@x.com")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPending, updated.PendingCommissions)
			}
		})
	}
}

func TestGetUnpaidSummary(t *testing.T) {
	service, affiliateRepo, enrollmentRepo := NewMock(t)

	affiliate := &domain.Affiliate{ID: 7, Email: "a@x.com"}

	tests := []struct {
		name          string
		from, to      *time.Time
		prepareMock   func()
		expectedTotal float64
		expectedCount int
		expectedError error
	}{
		{
			name: "Sums unpaid commissions with line items",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				enrollmentRepo.EXPECT().FindUnpaid(gomock.Any(), 7, gomock.Nil(), gomock.Nil()).Return([]domain.Enrollment{
					paidEnrollment(1, 10, true, false),
					paidEnrollment(2, 20, true, false),
					paidEnrollment(3, 5, true, false),
				}, nil)
			},
			expectedTotal: 35,
			expectedCount: 3,
		},
		{
			name: "Empty summary is not an error",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(affiliate, nil)
				enrollmentRepo.EXPECT().FindUnpaid(gomock.Any(), 7, gomock.Nil(), gomock.Nil()).Return(nil, nil)
			},
			expectedTotal: 0,
			expectedCount: 0,
		},
		{
			name: "Unknown affiliate",
			prepareMock: func() {
				affiliateRepo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, nil)
			},
			expectedError: ErrAffiliateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			summary, err := service.GetUnpaidSummary(context.Background(), "a@x.com", tt.from, tt.to)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, summary.TotalCommission)
				assert.Equal(t, tt.expectedCount, summary.CommissionsCount)
				assert.Len(t, summary.Items, tt.expectedCount)
			}
		})
	}
}
