package repositories

import (
	"bytes"
	"context"
	"math"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lawmanBack/internal/models"
)

// MemoryServiceRepository keeps services in process memory. It backs the
// "memory" driver and the tests, and follows the ordering rules of the
// Mongo repository.
type MemoryServiceRepository struct {
	mu       sync.RWMutex
	services []models.Service
	// WriteErr, when set, is returned by every write.
	WriteErr error
}

func (r *MemoryServiceRepository) CreateService(_ context.Context, service models.Service) (models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return models.Service{}, writeError("insert service", r.WriteErr)
	}
	service = service.Clone()
	service.ID = primitive.NewObjectID()
	r.services = append(r.services, service)
	return service.Clone(), nil
}

func (r *MemoryServiceRepository) GetService(_ context.Context, id primitive.ObjectID) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.services {
		if s.ID == id {
			found := s.Clone()
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryServiceRepository) ListServices(_ context.Context, limit int64) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].ID, out[j].ID) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryServiceRepository) ListServicesByAuthor(_ context.Context, authorID string) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Service{}
	for _, s := range r.services {
		if s.AuthorID == authorID {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

func (r *MemoryServiceRepository) DeleteService(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return 0, writeError("delete service", r.WriteErr)
	}
	for i, s := range r.services {
		if s.ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
	// WriteErr, when set, is returned by every write.
	WriteErr error
}

func (r *MemoryReviewRepository) CreateReview(_ context.Context, rev models.Review) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return models.Review{}, writeError("insert review", r.WriteErr)
	}
	rev = rev.Clone()
	rev.ID = primitive.NewObjectID()
	r.reviews = append(r.reviews, rev)
	return rev.Clone(), nil
}

func (r *MemoryReviewRepository) GetReviewsByServiceID(_ context.Context, serviceID string) ([]models.Review, error) {
	return r.filter(func(rev models.Review) bool { return rev.ServiceID == serviceID }), nil
}

func (r *MemoryReviewRepository) GetReviewsByAuthorID(_ context.Context, authorID string) ([]models.Review, error) {
	return r.filter(func(rev models.Review) bool { return rev.AuthorID == authorID }), nil
}

func (r *MemoryReviewRepository) filter(keep func(models.Review) bool) []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Review{}
	for _, rev := range r.reviews {
		if keep(rev) {
			out = append(out, rev.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].ID, out[j].ID) })
	return out
}

func (r *MemoryReviewRepository) SummarizeReviews(_ context.Context) ([]models.ReviewSummary, error) {
	type acc struct {
		count int
		rated int
		sum   float64
	}
	r.mu.RLock()
	groups := map[string]*acc{}
	for _, rev := range r.reviews {
		g, ok := groups[rev.ServiceID]
		if !ok {
			g = &acc{}
			groups[rev.ServiceID] = g
		}
		g.count++
		if rev.Rating != nil {
			g.rated++
			g.sum += *rev.Rating
		}
	}
	r.mu.RUnlock()

	out := make([]models.ReviewSummary, 0, len(groups))
	for serviceID, g := range groups {
		summary := models.ReviewSummary{ServiceID: serviceID, Count: g.count}
		if g.rated > 0 {
			avg := roundTenth(g.sum / float64(g.rated))
			summary.Avg = &avg
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ServiceID < out[j].ServiceID })
	return out, nil
}

func (r *MemoryReviewRepository) UpdateReview(_ context.Context, id primitive.ObjectID, authorID string, patch models.ReviewPatch) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return 0, writeError("update review", r.WriteErr)
	}
	for i, rev := range r.reviews {
		if rev.ID == id && rev.AuthorID == authorID {
			r.reviews[i] = patch.Apply(rev)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *MemoryReviewRepository) DeleteReview(_ context.Context, id primitive.ObjectID, authorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.WriteErr != nil {
		return 0, writeError("delete review", r.WriteErr)
	}
	for i, rev := range r.reviews {
		if rev.ID == id && rev.AuthorID == authorID {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newer(a, b primitive.ObjectID) bool {
	return bytes.Compare(a[:], b[:]) > 0
}

// roundTenth rounds half to even at one decimal place, like $round.
func roundTenth(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
