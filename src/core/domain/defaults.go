package domain

// DefaultRecommendationLimit caps recommendation results when the caller
// does not specify a limit.
const DefaultRecommendationLimit = 20

// MaxDescriptionLength is the maximum length of a book description.
const MaxDescriptionLength = 800

// Username length bounds, inclusive.
const (
	MinUsernameLength = 5
	MaxUsernameLength = 30
)
