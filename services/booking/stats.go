package booking

import "tourhub/models"

// Stats assembles the business dashboard aggregates. Each figure is an
// independent read-only query against the store; no consistency is
// guaranteed across the counts returned together.
func (s *DefaultBookingService) Stats(businessID string) (*models.BookingStats, error) {
	stats := &models.BookingStats{}

	var err error
	if stats.TotalBookings, err = s.Repo.CountByBusiness(businessID, ""); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.Repo.CountByBusiness(businessID, models.BookingPending); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = s.Repo.CountByBusiness(businessID, models.BookingConfirmed); err != nil {
		return nil, err
	}
	if stats.RejectedBookings, err = s.Repo.CountByBusiness(businessID, models.BookingRejected); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.Repo.ConfirmedRevenue(businessID); err != nil {
		return nil, err
	}
	if stats.TotalTours, err = s.TourRepo.CountByBusiness(businessID); err != nil {
		return nil, err
	}
	return stats, nil
}
