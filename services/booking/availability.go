package booking

import (
	"context"
	"fmt"

	appointmentRepo "fabulous/database/repository/appointment"
	serviceRepo "fabulous/database/repository/service"
	"fabulous/models"
	"fabulous/utils"

	"go.uber.org/zap"
)

// ReasonSlotConflict is the single post-validation rejection message for
// the point check; the engine does not discriminate between conflicting
// appointments at this layer.
const ReasonSlotConflict = "This time slot overlaps with an existing appointment"

// DefaultAvailabilityService implements AvailabilityService against the
// appointment and service stores.
type DefaultAvailabilityService struct {
	Appointments appointmentRepo.AppointmentRepository
	Services     serviceRepo.ServiceRepository
	Cfg          Config
}

// GetAvailability computes the bookable slots for one artist and day.
func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, q AvailabilityQuery) (*models.AvailabilityResult, error) {
	cfg := s.Cfg.withDefaults()
	logger := utils.GetLogger()

	if ok, reason := IsValidBookingDate(q.Date); !ok {
		return nil, &DateValidationError{Reason: reason}
	}

	svc, err := s.Services.GetByID(ctx, q.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("availability: service lookup failed: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	duration := serviceDuration(svc)

	hours := GetBusinessHours(q.Date)
	allSlots := GenerateTimeSlots(hours.StartHour, hours.EndHour, cfg.SlotInterval)

	blocked, err := s.BlockedSlots(ctx, q.ArtistID, q.Date, q.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}

	available := FilterAvailableSlots(allSlots, blocked, duration, cfg.Buffer)

	logger.Info("availability computed",
		zap.String("artistId", q.ArtistID),
		zap.String("date", q.Date),
		zap.Int("serviceDuration", duration),
		zap.Int("blocked", len(blocked)),
		zap.Int("available", len(available)),
	)

	return &models.AvailabilityResult{
		Success:         true,
		AvailableSlots:  available,
		BlockedSlots:    blocked,
		ServiceDuration: duration,
		Date:            q.Date,
		ArtistID:        q.ArtistID,
	}, nil
}

// CheckSlot tests a single requested slot. Date validation failures are
// part of the result, unlike GetAvailability where they are errors; the
// two endpoints have always differed here and clients depend on it.
func (s *DefaultAvailabilityService) CheckSlot(ctx context.Context, req models.AvailabilityCheckRequest) (*models.AvailabilityCheckResult, error) {
	cfg := s.Cfg.withDefaults()

	if ok, reason := IsValidBookingDate(req.Date); !ok {
		return &models.AvailabilityCheckResult{Available: false, Reason: reason}, nil
	}

	svc, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("availability: service lookup failed: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	duration := serviceDuration(svc)

	blocked, err := s.BlockedSlots(ctx, req.ArtistID, req.Date, req.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}

	requested := TimeToMinutes(req.Time)
	for _, b := range blocked {
		if Overlaps(requested, duration+cfg.Buffer, TimeToMinutes(b.Start), b.Duration+cfg.Buffer) {
			return &models.AvailabilityCheckResult{Available: false, Reason: ReasonSlotConflict}, nil
		}
	}

	utils.GetLogger().Info("availability confirmed",
		zap.String("artistId", req.ArtistID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)
	return &models.AvailabilityCheckResult{Available: true}, nil
}

// serviceDuration resolves a service record's duration string, falling
// back to "60 min" when the record lacks one.
func serviceDuration(svc *models.Service) int {
	d := svc.Duration
	if d == "" {
		d = "60 min"
	}
	return ParseDuration(d)
}
