package hotelimage

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound    = errors.New("hotel image not found")
	ErrNotAnImage  = errors.New("uploaded file is not an image")
	ErrNoThumbnail = errors.New("thumbnail not available for this image")
)

// Image is an uploaded hotel photo stored on disk with its metadata row.
type Image struct {
	ID            string // UUID
	HotelID       int64
	Filename      string
	StoragePath   string  `json:"-"`
	ThumbnailPath *string `json:"-"`
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for the full-size image.
func URL(id string) string {
	return "/hotel-images/" + id
}

// ThumbnailURL returns the public path for the image's thumbnail.
func ThumbnailURL(id string) string {
	return fmt.Sprintf("/hotel-images/%s/thumbnail", id)
}
