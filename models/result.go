package models

// InsertResult mirrors the driver's insertOne acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult mirrors the driver's deleteOne acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResponse is the body of PATCH /books/{id}.
type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse carries an informational message in the success channel.
type MessageResponse struct {
	Message string `json:"message"`
}
