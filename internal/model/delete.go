package model

import "fmt"

type DeleteStatus string

const (
	DeleteStatusDeleted  DeleteStatus = "DELETED"
	DeleteStatusNotFound DeleteStatus = "NOT_FOUND"
)

// DeleteResult is the structured outcome of a delete mutation. Status is
// machine-checkable; Message is the human-readable text shown by the UI.
type DeleteResult struct {
	Status  DeleteStatus `json:"status"`
	Message string       `json:"message"`
}

func Deleted(entity string, id int64) *DeleteResult {
	return &DeleteResult{
		Status:  DeleteStatusDeleted,
		Message: fmt.Sprintf("%s %d deleted", entity, id),
	}
}

func NotDeleted(entity string, id int64) *DeleteResult {
	return &DeleteResult{
		Status:  DeleteStatusNotFound,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}
