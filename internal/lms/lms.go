// Package lms provisions course access for paid enrollments in the
// external learning-management system. It is a downstream consumer of the
// ledger: sync failures are retried here and never touch ledger state.
package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coursepay/coursepay/internal/config"
	"github.com/coursepay/coursepay/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coursepay/coursepay/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1

	StatusSynced = "synced"
	StatusFailed = "failed"
)

var syncingEnrollments sync.Map

type Repo interface {
	FindForLMSSync(ctx context.Context, limit uint32) ([]domain.Enrollment, error)
	UpdateLMSStatus(ctx context.Context, enrollmentID int, status string) error
}

type provisionRequest struct {
	CourseID      string `json:"course_id"`
	CustomerEmail string `json:"customer_email"`
	PaymentID     string `json:"payment_id"`
}

type provisionResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

type Service struct {
	url            string
	enrollmentRepo Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, enrollmentRepo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.LMSAddress,
		enrollmentRepo: enrollmentRepo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("LMS sync service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping LMS sync")
			return
		case <-ticker.C:
			s.processEnrollments(ctx)
		}
	}
}

func (s *Service) processEnrollments(ctx context.Context) {
	enrollments, err := s.enrollmentRepo.FindForLMSSync(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch enrollments for LMS sync", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, enrollment := range enrollments {
		enrollment := enrollment

		if _, loaded := syncingEnrollments.LoadOrStore(enrollment.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer syncingEnrollments.Delete(enrollment.ID)
				return s.handleEnrollment(ctx, enrollment)
			})
			if err != nil {
				syncingEnrollments.Delete(enrollment.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error syncing enrollments", zap.Error(err))
	}
}

func (s *Service) handleEnrollment(ctx context.Context, enrollment domain.Enrollment) error {
	url := s.url + "/api/enrollments"
	payload, err := json.Marshal(provisionRequest{
		CourseID:      enrollment.CourseID,
		CustomerEmail: enrollment.CustomerEmail,
		PaymentID:     enrollment.PaymentID,
	})
	if err != nil {
		return fmt.Errorf("failed to encode provision request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, headers, bytes.NewReader(payload))
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return s.markFailed(ctx, enrollment, fmt.Errorf("failed to sync enrollment %d after %d retries: %w", enrollment.ID, maxRetries, err))
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(enrollment, respHeaders, attempt)
			case http.StatusOK, http.StatusCreated:
				return s.confirmProvision(ctx, enrollment, respBody)
			case http.StatusBadGateway, http.StatusServiceUnavailable:
				zap.L().Warn("LMS temporarily unavailable, retrying",
					zap.Int("enrollmentID", enrollment.ID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return s.markFailed(ctx, enrollment, fmt.Errorf("LMS unavailable for enrollment %d after %d retries", enrollment.ID, maxRetries))
			default:
				zap.L().Error("Unexpected status code from LMS", zap.Int("status", statusCode), zap.Int("enrollmentID", enrollment.ID))
				return s.markFailed(ctx, enrollment, errors.New("unexpected status code from LMS"))
			}
		}
	}
	return nil
}

func (s *Service) handleRateLimit(enrollment domain.Enrollment, headers http.Header, attempt int) error {
	retryAfter := retryInterval * time.Duration(attempt)
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("LMS rate limited sync, backing off",
		zap.Int("enrollmentID", enrollment.ID),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}

func (s *Service) confirmProvision(ctx context.Context, enrollment domain.Enrollment, respBody []byte) error {
	var response provisionResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse LMS response body: %w", err)
	}

	if response.PaymentID != enrollment.PaymentID {
		return fmt.Errorf("payment id mismatch: expected %s, got %s", enrollment.PaymentID, response.PaymentID)
	}

	if err := s.enrollmentRepo.UpdateLMSStatus(ctx, enrollment.ID, StatusSynced); err != nil {
		return fmt.Errorf("failed to mark enrollment %d synced: %w", enrollment.ID, err)
	}
	zap.L().Info("enrollment provisioned in LMS",
		zap.Int("enrollmentID", enrollment.ID),
		zap.String("courseID", enrollment.CourseID),
	)
	return nil
}

func (s *Service) markFailed(ctx context.Context, enrollment domain.Enrollment, cause error) error {
	if err := s.enrollmentRepo.UpdateLMSStatus(ctx, enrollment.ID, StatusFailed); err != nil {
		return fmt.Errorf("failed to mark enrollment %d failed: %w", enrollment.ID, err)
	}
	return cause
}
