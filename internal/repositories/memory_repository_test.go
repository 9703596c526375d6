package repositories

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"lawmanBack/internal/models"
)

func rating(v float64) *float64 { return &v }

func TestMemoryServiceRepositoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := &MemoryServiceRepository{}
	var ids []primitive.ObjectID
	for _, title := range []string{"divorce", "tax", "property"} {
		s, err := repo.CreateService(ctx, models.Service{AuthorID: "u1", Fields: models.Document{"title": title}})
		if err != nil {
			t.Fatalf("CreateService: %v", err)
		}
		ids = append(ids, s.ID)
	}

	got, err := repo.ListServices(ctx, 2)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 services, got %d", len(got))
	}
	if got[0].ID != ids[2] || got[1].ID != ids[1] {
		t.Fatalf("expected newest first, got %v %v", got[0].ID, got[1].ID)
	}
}

func TestMemoryServiceRepositoryCopiesDocuments(t *testing.T) {
	ctx := context.Background()
	repo := &MemoryServiceRepository{}
	in := models.Service{Fields: models.Document{"title": "tax"}}
	created, _ := repo.CreateService(ctx, in)
	in.Fields["title"] = "changed"

	found, err := repo.GetService(ctx, created.ID)
	if err != nil || found == nil {
		t.Fatalf("GetService: %v %v", found, err)
	}
	if found.Fields["title"] != "tax" {
		t.Fatalf("stored document was aliased: %v", found.Fields["title"])
	}
}

func TestMemoryServiceRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := &MemoryServiceRepository{}
	created, _ := repo.CreateService(ctx, models.Service{})

	n, err := repo.DeleteService(ctx, created.ID)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 deleted, got %d %v", n, err)
	}
	n, err = repo.DeleteService(ctx, created.ID)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 deleted on second call, got %d %v", n, err)
	}
	if found, _ := repo.GetService(ctx, created.ID); found != nil {
		t.Fatalf("expected nil after delete, got %+v", found)
	}
}

func TestMemoryReviewRepositorySummaries(t *testing.T) {
	ctx := context.Background()
	repo := &MemoryReviewRepository{}
	for _, rev := range []models.Review{
		{ServiceID: "serviceA", AuthorID: "u1", Rating: rating(5)},
		{ServiceID: "serviceA", AuthorID: "u2", Rating: rating(3)},
		{ServiceID: "serviceB", AuthorID: "u1", Rating: rating(4)},
		{ServiceID: "serviceC", AuthorID: "u1"},
	} {
		if _, err := repo.CreateReview(ctx, rev); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
	}

	got, err := repo.SummarizeReviews(ctx)
	if err != nil {
		t.Fatalf("SummarizeReviews: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(got))
	}
	if got[0].ServiceID != "serviceA" || got[0].Count != 2 || got[0].Avg == nil || *got[0].Avg != 4.0 {
		t.Errorf("unexpected serviceA summary: %+v", got[0])
	}
	if got[1].ServiceID != "serviceB" || got[1].Count != 1 || got[1].Avg == nil || *got[1].Avg != 4.0 {
		t.Errorf("unexpected serviceB summary: %+v", got[1])
	}
	if got[2].Count != 1 || got[2].Avg != nil {
		t.Errorf("expected unrated group with nil avg, got %+v", got[2])
	}
}

func TestRoundTenth(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{4.0, 4.0},
		{3.6666667, 3.7},
		{4.25, 4.2},
		{4.75, 4.8},
		{13.0 / 3.0, 4.3},
	}
	for _, c := range cases {
		if got := roundTenth(c.in); got != c.want {
			t.Errorf("roundTenth(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMemoryReviewRepositoryOwnership(t *testing.T) {
	ctx := context.Background()
	repo := &MemoryReviewRepository{}
	rev, _ := repo.CreateReview(ctx, models.Review{ServiceID: "s1", AuthorID: "owner", Rating: rating(5), Fields: models.Document{"comment": "great"}})
	patch := models.ReviewPatch{"rating": 2.0}

	n, err := repo.UpdateReview(ctx, rev.ID, "intruder", patch)
	if err != nil || n != 0 {
		t.Fatalf("expected no match for another author, got %d %v", n, err)
	}
	n, err = repo.UpdateReview(ctx, rev.ID, "owner", patch)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 match, got %d %v", n, err)
	}

	list, _ := repo.GetReviewsByServiceID(ctx, "s1")
	if len(list) != 1 || *list[0].Rating != 2 || list[0].Fields["comment"] != "great" {
		t.Fatalf("unexpected review after update: %+v", list)
	}

	if n, _ := repo.DeleteReview(ctx, rev.ID, "intruder"); n != 0 {
		t.Fatalf("expected intruder delete to match nothing")
	}
	if n, _ := repo.DeleteReview(ctx, rev.ID, "owner"); n != 1 {
		t.Fatalf("expected owner delete to remove the review")
	}
}

func TestWriteErrorMapsUnacknowledged(t *testing.T) {
	repo := &MemoryReviewRepository{WriteErr: mongo.ErrUnacknowledgedWrite}
	_, err := repo.CreateReview(context.Background(), models.Review{})
	if !errors.Is(err, models.ErrNotAcknowledged) {
		t.Fatalf("expected ErrNotAcknowledged, got %v", err)
	}

	other := errors.New("boom")
	if err := writeError("op", other); !errors.Is(err, other) || errors.Is(err, models.ErrNotAcknowledged) {
		t.Fatalf("unexpected mapping: %v", err)
	}
}
