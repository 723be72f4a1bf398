package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/roster/internal/app/models"
)

// yearDuration is the promotion year used by the sweep: 365 days of real
// elapsed time, not an academic calendar.
const yearDuration = 365 * 24 * time.Hour

// PromotionStore is the persistence surface the promotion sweep needs.
type PromotionStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	UpdatePromotion(ctx context.Context, id int64, yearOfStudy int, promotedAt time.Time) error
}

// PromotionService advances year_of_study based on elapsed time.
type PromotionService struct {
	store  PromotionStore
	logger zerolog.Logger
	now    func() time.Time
}

// NewPromotionService creates a new promotion service instance.
func NewPromotionService(store PromotionStore, logger zerolog.Logger) *PromotionService {
	return &PromotionService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Sweep promotes every eligible record and returns the number promoted.
//
// A record is promoted when it is below the final year and at least one whole
// 365-day year has elapsed since last_promoted_at. The new year is the old
// year plus the whole elapsed years, clamped to the final year, and
// last_promoted_at moves to now. Records that are not promoted keep their
// last_promoted_at untouched so partial years keep accumulating toward the
// next boundary.
//
// Individual record failures are logged and skipped; one bad record must not
// abort the whole sweep.
func (s *PromotionService) Sweep(ctx context.Context) (int, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	promoted := 0

	for _, student := range students {
		if student.YearOfStudy >= models.MaxYearOfStudy {
			continue
		}

		elapsedYears := int(now.Sub(student.LastPromotedAt) / yearDuration)
		if elapsedYears < 1 {
			continue
		}

		newYear := student.YearOfStudy + elapsedYears
		if newYear > models.MaxYearOfStudy {
			newYear = models.MaxYearOfStudy
		}

		if err := s.store.UpdatePromotion(ctx, student.ID, newYear, now); err != nil {
			s.logger.Error().Err(err).Int64("studentID", student.ID).Msg("Failed to promote student record")
			continue
		}

		s.logger.Info().
			Int64("studentID", student.ID).
			Int("fromYear", student.YearOfStudy).
			Int("toYear", newYear).
			Msg("Student promoted")
		promoted++
	}

	return promoted, nil
}
