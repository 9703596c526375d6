package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is the free-form part of a stored record: whatever the client
// sent that is not one of the typed fields.
type Document map[string]interface{}

// ParseID converts a path identifier into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

func decodeDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidField)
	}
	// Identifiers are assigned by the store.
	delete(doc, "_id")
	return doc, nil
}

// storedDocument decodes a raw stored record. Nested documents decode to
// maps, as they do through the client.
func storedDocument(data []byte) (Document, error) {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// The store holds whatever clients wrote. The claim helpers move a value
// into a typed field only when it has the expected type; anything else
// stays in the document as stored.

func (d Document) claimID() primitive.ObjectID {
	id, ok := d["_id"].(primitive.ObjectID)
	if ok {
		delete(d, "_id")
	}
	return id
}

func (d Document) claimString(key string) string {
	s, ok := d[key].(string)
	if ok {
		delete(d, key)
	}
	return s
}

func (d Document) claimNumber(key string) *float64 {
	var f float64
	switch v := d[key].(type) {
	case float64:
		f = v
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	default:
		return nil
	}
	delete(d, key)
	return &f
}

// takeString removes key from doc and returns its value. A missing or null
// value yields "".
func (d Document) takeString(key string) (string, error) {
	v, ok := d[key]
	delete(d, key)
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidField, key)
	}
	return s, nil
}

func (d Document) takeNumber(key string) (*float64, error) {
	v, ok := d[key]
	delete(d, key)
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidField, key)
	}
	return &f, nil
}

// flatten merges the typed fields back over the free-form ones for output.
func (d Document) flatten(id primitive.ObjectID, typed map[string]interface{}) Document {
	out := make(Document, len(d)+len(typed)+1)
	for k, v := range d {
		out[k] = v
	}
	for k, v := range typed {
		out[k] = v
	}
	if !id.IsZero() {
		out["_id"] = id.Hex()
	}
	return out
}

func (d Document) clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
