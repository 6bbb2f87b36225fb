package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateVideoRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	VideoURL    string   `json:"video_url"`
	Thumbnail   *string  `json:"thumbnail"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Duration    *string  `json:"duration"`
	Published   bool     `json:"published"`
}

func (r CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.VideoURL,
			validation.Required.Error("video_url is required"),
			is.URL,
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

type UpdateVideoRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"video_url"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Duration    *string   `json:"duration"`
	Published   *bool     `json:"published"`
}

func (r UpdateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be blank"),
			validation.Length(1, 255),
		),
		validation.Field(&r.VideoURL,
			validation.NilOrNotEmpty.Error("video_url cannot be blank"),
			is.URL,
		),
		validation.Field(&r.Category,
			validation.NilOrNotEmpty.Error("category cannot be blank"),
			validation.Length(1, 100),
		),
	)
}

func (r UpdateVideoRequest) Params() UpdateVideoParams {
	return UpdateVideoParams{
		Title:       r.Title,
		Description: r.Description,
		VideoURL:    r.VideoURL,
		Thumbnail:   r.Thumbnail,
		Category:    r.Category,
		Tags:        r.Tags,
		Duration:    r.Duration,
		Published:   r.Published,
	}
}
