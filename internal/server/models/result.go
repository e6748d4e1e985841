package models

// Write results acknowledge a single store operation.

type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Inserted builds the acknowledgement for a fresh insert.
func Inserted(id string) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: &id}
}

// Deleted builds the acknowledgement for a delete of n rows.
func Deleted(n int64) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: n}
}

// CreateUserResult answers POST /users. Message is set, and nothing is
// inserted, when the email is already registered.
type CreateUserResult struct {
	InsertResult
	Message string `json:"message,omitempty"`
}

// PaymentResult answers POST /payments.
type PaymentResult struct {
	InsertResult *InsertResult `json:"insertResult"`
	DeleteResult *DeleteResult `json:"deleteResult"`
}
