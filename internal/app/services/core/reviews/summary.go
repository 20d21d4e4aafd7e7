package reviews

import "medibook-service/internal/pkg/dto/responses"

// AverageRating is the arithmetic mean of the ratings, 0 when there are
// none.
func AverageRating(reviews []responses.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	return float64(total) / float64(len(reviews))
}
