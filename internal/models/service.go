package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a listed professional offering. Only the identifier and the
// author are typed; title, description, price and the rest are stored as
// the client sent them.
type Service struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID string             `bson:"authorID,omitempty"`
	Fields   Document           `bson:",inline"`
}

func (s Service) MarshalJSON() ([]byte, error) {
	typed := map[string]interface{}{}
	if s.AuthorID != "" {
		typed["authorID"] = s.AuthorID
	}
	return json.Marshal(s.Fields.flatten(s.ID, typed))
}

func (s *Service) UnmarshalJSON(data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}
	author, err := doc.takeString("authorID")
	if err != nil {
		return err
	}
	*s = Service{AuthorID: author, Fields: doc}
	return nil
}

// UnmarshalBSON never fails on a stored authorID of another type; the
// value is kept in Fields.
func (s *Service) UnmarshalBSON(data []byte) error {
	doc, err := storedDocument(data)
	if err != nil {
		return err
	}
	id := doc.claimID()
	author := doc.claimString("authorID")
	*s = Service{ID: id, AuthorID: author, Fields: doc}
	return nil
}

// Clone returns a copy that shares no top-level map with s.
func (s Service) Clone() Service {
	s.Fields = s.Fields.clone()
	return s
}
