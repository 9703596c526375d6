package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ServiceID string             `bson:"serviceID,omitempty"`
	AuthorID  string             `bson:"authorID,omitempty"`
	Rating    *float64           `bson:"rating,omitempty"`
	Fields    Document           `bson:",inline"`
}

func (rev Review) MarshalJSON() ([]byte, error) {
	typed := map[string]interface{}{}
	if rev.ServiceID != "" {
		typed["serviceID"] = rev.ServiceID
	}
	if rev.AuthorID != "" {
		typed["authorID"] = rev.AuthorID
	}
	if rev.Rating != nil {
		typed["rating"] = *rev.Rating
	}
	return json.Marshal(rev.Fields.flatten(rev.ID, typed))
}

func (rev *Review) UnmarshalJSON(data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	serviceID, err := doc.takeString("serviceID")
	if err != nil {
		return err
	}
	author, err := doc.takeString("authorID")
	if err != nil {
		return err
	}
	rating, err := doc.takeNumber("rating")
	if err != nil {
		return err
	}
	*rev = Review{ServiceID: serviceID, AuthorID: author, Rating: rating, Fields: doc}
	return nil
}

// UnmarshalBSON keeps typed fields of an unexpected type in Fields, so a
// non-numeric rating is listed as stored and left out of averages.
func (rev *Review) UnmarshalBSON(data []byte) error {
	doc, err := storedDocument(data)
	if err != nil {
		return err
	}
	id := doc.claimID()
	serviceID := doc.claimString("serviceID")
	author := doc.claimString("authorID")
	rating := doc.claimNumber("rating")
	*rev = Review{ID: id, ServiceID: serviceID, AuthorID: author, Rating: rating, Fields: doc}
	return nil
}

func (rev Review) Clone() Review {
	if rev.Rating != nil {
		r := *rev.Rating
		rev.Rating = &r
	}
	rev.Fields = rev.Fields.clone()
	return rev
}

// ReviewPatch holds the fields an edit overwrites. The identifier and the
// author can never be part of it.
type ReviewPatch Document

// NewReviewPatch checks a decoded edit body.
func NewReviewPatch(raw map[string]interface{}) (ReviewPatch, error) {
	patch := make(ReviewPatch, len(raw))
	for k, v := range raw {
		switch k {
		case "_id", "authorID":
			continue
		case "rating":
			if _, ok := v.(float64); !ok {
				return nil, fmt.Errorf("%w: rating must be a number", ErrInvalidField)
			}
		case "serviceID":
			if _, ok := v.(string); !ok {
				return nil, fmt.Errorf("%w: serviceID must be a string", ErrInvalidField)
			}
		}
		patch[k] = v
	}
	if len(patch) == 0 {
		return nil, ErrEmptyPatch
	}
	return patch, nil
}

// Apply overwrites the named fields of rev. Fields the patch does not name
// keep their values.
func (p ReviewPatch) Apply(rev Review) Review {
	rev = rev.Clone()
	if rev.Fields == nil {
		rev.Fields = Document{}
	}
	for k, v := range p {
		switch k {
		case "serviceID":
			rev.ServiceID = v.(string)
		case "rating":
			r := v.(float64)
			rev.Rating = &r
		default:
			rev.Fields[k] = v
		}
	}
	return rev
}

// ReviewSummary is one row of the per-service aggregation. Avg is nil when
// none of the service's reviews carries a numeric rating.
type ReviewSummary struct {
	ServiceID string   `bson:"_id" json:"serviceID"`
	Count     int      `bson:"count" json:"count"`
	Avg       *float64 `bson:"avg" json:"avg"`
}
