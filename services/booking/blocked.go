package booking

import (
	"context"
	"fmt"

	"fabulous/models"
	"fabulous/utils"

	"go.uber.org/zap"
)

// BlockedSlots fetches the active (pending/confirmed) appointments for
// an artist on a date and resolves each into a blocked interval using
// the service's duration string. Emission follows the store's
// start-time order. A non-empty excludeID leaves that appointment out,
// so a reschedule does not collide with itself.
//
// An appointment whose service record is missing does not block by
// default, matching historical behavior; with BlockUnknownServices it
// blocks with the 60-minute fallback instead.
func (s *DefaultAvailabilityService) BlockedSlots(ctx context.Context, artistID, date, excludeID string) ([]models.BlockedSlot, error) {
	logger := utils.GetLogger()

	appts, err := s.Appointments.FindActive(ctx, artistID, date, excludeID)
	if err != nil {
		return nil, fmt.Errorf("availability: active appointments lookup failed: %w", err)
	}

	blocked := []models.BlockedSlot{}
	for _, appt := range appts {
		svc, err := s.Services.GetByID(ctx, appt.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("availability: service lookup for appointment %s failed: %w", appt.ID, err)
		}

		var duration int
		switch {
		case svc != nil:
			duration = serviceDuration(svc)
		case s.Cfg.BlockUnknownServices:
			duration = DefaultDurationMinutes
		default:
			logger.Warn("appointment references unknown service, not blocking",
				zap.String("appointmentId", appt.ID),
				zap.String("serviceId", appt.ServiceID),
			)
			continue
		}

		blocked = append(blocked, models.BlockedSlot{
			Start:         appt.AppointmentTime,
			Duration:      duration,
			AppointmentID: appt.ID,
		})
		logger.Debug("blocked slot",
			zap.String("start", appt.AppointmentTime),
			zap.Int("duration", duration),
			zap.String("appointmentId", appt.ID),
		)
	}
	return blocked, nil
}
