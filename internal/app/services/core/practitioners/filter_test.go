package practitioners

import (
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePractitioners() []models.Practitioner {
	return []models.Practitioner{
		{ID: "p1", Specialty: "Cardiology", ConsultationTypes: []string{constvars.ConsultationTypeVirtual}},
		{ID: "p2", Specialty: "Cardiology", ConsultationTypes: []string{constvars.ConsultationTypeInPerson}},
		{ID: "p3", Specialty: "Dermatology", ConsultationTypes: []string{constvars.ConsultationTypeVirtual, constvars.ConsultationTypeInPerson}},
		{ID: "p4", Specialty: "Neurology", ConsultationTypes: nil},
	}
}

func TestFilterPractitioners(t *testing.T) {
	testCases := []struct {
		name        string
		filters     *requests.PractitionerFilters
		expectedIDs []string
	}{
		{
			name:        "empty filters return everything",
			filters:     &requests.PractitionerFilters{},
			expectedIDs: []string{"p1", "p2", "p3", "p4"},
		},
		{
			name:        "specialty is an exact match",
			filters:     &requests.PractitionerFilters{Specialty: "Cardiology"},
			expectedIDs: []string{"p1", "p2"},
		},
		{
			name:        "specialty is case sensitive",
			filters:     &requests.PractitionerFilters{Specialty: "cardiology"},
			expectedIDs: []string{},
		},
		{
			name:        "consultation type is set membership",
			filters:     &requests.PractitionerFilters{ConsultationType: constvars.ConsultationTypeVirtual},
			expectedIDs: []string{"p1", "p3"},
		},
		{
			name: "specialty and consultation type narrow together",
			filters: &requests.PractitionerFilters{
				Specialty:        "Cardiology",
				ConsultationType: constvars.ConsultationTypeInPerson,
			},
			expectedIDs: []string{"p2"},
		},
		{
			name:        "practitioner with no consultation types never matches a type filter",
			filters:     &requests.PractitionerFilters{ConsultationType: constvars.ConsultationTypeInPerson},
			expectedIDs: []string{"p2", "p3"},
		},
		{
			name:        "rating and date are accepted but never applied",
			filters:     &requests.PractitionerFilters{Rating: "5", Date: "2025-03-10"},
			expectedIDs: []string{"p1", "p2", "p3", "p4"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterPractitioners(samplePractitioners(), tc.filters)

			ids := make([]string, 0, len(filtered))
			for _, practitioner := range filtered {
				ids = append(ids, practitioner.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestFilterPractitioners_ResultIsSubset(t *testing.T) {
	input := samplePractitioners()
	filtered := FilterPractitioners(input, &requests.PractitionerFilters{Specialty: "Dermatology"})

	byID := make(map[string]models.Practitioner, len(input))
	for _, practitioner := range input {
		byID[practitioner.ID] = practitioner
	}
	for _, practitioner := range filtered {
		original, ok := byID[practitioner.ID]
		assert.True(t, ok, "filter must not invent practitioners")
		assert.Equal(t, original, practitioner, "filter must not mutate practitioners")
	}
}
