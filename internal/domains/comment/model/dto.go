package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest carries the raw nullable parent pair; the
// exclusivity policy is applied in the service, not here.
type CreateCommentRequest struct {
	Content string     `json:"content"`
	PostID  *uuid.UUID `json:"post_id"`
	VideoID *uuid.UUID `json:"video_id"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 10000),
		),
	)
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be blank"),
			validation.Length(1, 10000),
		),
	)
}
