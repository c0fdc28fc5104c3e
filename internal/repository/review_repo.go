package repository

import (
	"log"
	"sync"

	"barberia/internal/db"
	"barberia/internal/store"
)

const docReviews = "reviews"

// ReviewRepository is an append-only log: reviews are never edited or
// deleted and keep their insertion order.
type ReviewRepository struct {
	mu      sync.Mutex
	store   *store.Store
	reviews []db.Review
}

func NewReviewRepository(st *store.Store) *ReviewRepository {
	r := &ReviewRepository{store: st}
	if err := st.Load(docReviews, &r.reviews); err != nil {
		log.Printf("Error loading reviews, starting empty: %v", err)
	}
	return r
}

func (r *ReviewRepository) List() []db.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]db.Review{}, r.reviews...)
}

func (r *ReviewRepository) Add(review db.Review) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	if err := r.store.Save(docReviews, r.reviews); err != nil {
		log.Printf("Error writing reviews file: %v", err)
	}
}
