package model

// ScoredProduct is a product with the score that ranked it, kept so
// callers can explain why a result came back where it did.
type ScoredProduct struct {
	Product Product
	Score   float64
}

// SimilarUser is another user with their behavioral similarity to the
// queried user, in [0, 1].
type SimilarUser struct {
	User       User
	Similarity float64
}
