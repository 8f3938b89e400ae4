package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursepay/coursepay/internal/domain"
	"github.com/coursepay/coursepay/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Registers a new operator",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.Operator) (*domain.Operator, error) {
						assert.Equal(t, "hashed", o.PasswordHash)
						o.ID = 1
						return o, nil
					})
			},
		},
		{
			name: "Login already taken",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(&domain.Operator{ID: 1}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name: "Hashing failure is propagated",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret123").Return("", errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			operator, err := service.Register(context.Background(), "admin", "secret123")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, operator)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(&domain.Operator{ID: 1, PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(&domain.Operator{ID: 1, PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			operator, err := service.Authenticate(context.Background(), "admin", "secret123")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, operator)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, operator)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, "admin", gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(1, "admin")
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(1, "admin", gomock.Any()).Return("", errors.New("some error"))
	_, err = service.GenerateToken(1, "admin")
	assert.Error(t, err)
}
