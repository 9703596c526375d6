package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lawmanBack/internal/models"
)

type ReviewRepository struct {
	Collection *mongo.Collection
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	rev.ID = primitive.NilObjectID
	res, err := r.Collection.InsertOne(ctx, rev)
	if err != nil {
		return models.Review{}, writeError("insert review", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rev.ID = id
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByServiceID(ctx context.Context, serviceID string) ([]models.Review, error) {
	return r.find(ctx, bson.D{{Key: "serviceID", Value: serviceID}})
}

func (r *ReviewRepository) GetReviewsByAuthorID(ctx context.Context, authorID string) ([]models.Review, error) {
	return r.find(ctx, bson.D{{Key: "authorID", Value: authorID}})
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.D) ([]models.Review, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) SummarizeReviews(ctx context.Context) ([]models.ReviewSummary, error) {
	cursor, err := r.Collection.Aggregate(ctx, summaryPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}
	summaries := []models.ReviewSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode review summaries: %w", err)
	}
	return summaries, nil
}

// UpdateReview sets the patched fields on the review with id written by
// authorID and reports how many documents matched.
func (r *ReviewRepository) UpdateReview(ctx context.Context, id primitive.ObjectID, authorID string, patch models.ReviewPatch) (int64, error) {
	update := bson.D{{Key: "$set", Value: bson.M(patch)}}
	res, err := r.Collection.UpdateOne(ctx, ownedBy(id, authorID), update)
	if err != nil {
		return 0, writeError("update review", err)
	}
	return res.MatchedCount, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id primitive.ObjectID, authorID string) (int64, error) {
	res, err := r.Collection.DeleteOne(ctx, ownedBy(id, authorID))
	if err != nil {
		return 0, writeError("delete review", err)
	}
	return res.DeletedCount, nil
}

func ownedBy(id primitive.ObjectID, authorID string) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "authorID", Value: authorID}}
}

// summaryPipeline groups reviews by service. $avg skips non-numeric
// ratings, $sum counts every review of the group.
func summaryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$serviceID"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "count", Value: 1},
			{Key: "avg", Value: bson.D{{Key: "$round", Value: bson.A{"$avg", 1}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
