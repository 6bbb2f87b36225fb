package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePostRequest is the HTTP payload for creating a post.
type CreatePostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   *string  `json:"excerpt"`
	Image     *string  `json:"image"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Tags,
			validation.Each(validation.Length(1, 50)),
		),
	)
}

// UpdatePostRequest is the HTTP payload for a partial patch. Absent
// fields stay untouched.
type UpdatePostRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Image     *string   `json:"image"`
	Category  *string   `json:"category"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be blank"),
		),
		validation.Field(&r.Category,
			validation.NilOrNotEmpty.Error("category cannot be blank"),
			validation.Length(1, 100),
		),
	)
}

// Params converts the patch payload to repository params.
func (r UpdatePostRequest) Params() UpdatePostParams {
	return UpdatePostParams{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Image:     r.Image,
		Category:  r.Category,
		Tags:      r.Tags,
		Published: r.Published,
	}
}
