package practitioners

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

// FilterPractitioners narrows the list by specialty (exact match) and
// consultation type (set membership). Rating and date filters are carried in
// the request shape but intentionally not applied: their semantics were
// never defined and inventing them here would silently change search
// results.
func FilterPractitioners(practitioners []models.Practitioner, filters *requests.PractitionerFilters) []models.Practitioner {
	if filters.IsEmpty() {
		return practitioners
	}

	filtered := make([]models.Practitioner, 0, len(practitioners))
	for _, practitioner := range practitioners {
		if !matchesSpecialty(&practitioner, filters.Specialty) {
			continue
		}
		if !matchesConsultationType(&practitioner, filters.ConsultationType) {
			continue
		}
		filtered = append(filtered, practitioner)
	}
	return filtered
}

// matchesSpecialty is an exact, case-sensitive comparison. An empty filter
// matches everything.
func matchesSpecialty(practitioner *models.Practitioner, specialty string) bool {
	if specialty == "" {
		return true
	}
	return practitioner.Specialty == specialty
}

func matchesConsultationType(practitioner *models.Practitioner, consultationType string) bool {
	if consultationType == "" {
		return true
	}
	return practitioner.SupportsConsultationType(consultationType)
}
