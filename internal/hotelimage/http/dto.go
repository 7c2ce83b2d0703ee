package http

type UploadResponse struct {
	ImageID      string  `json:"imageId"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}
