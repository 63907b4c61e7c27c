package entity

const BannerStatusActive = "active"

// Banner is a promotional poster document. Only active entries are ever
// shown to customers.
type Banner struct {
	ID          string `json:"id" firestore:"id"`
	Image       string `json:"image" firestore:"image"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Status      string `json:"status" firestore:"status"`
}
