package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/hotel-booking-backend/internal/hotelimage"
	"github.com/eventpass/hotel-booking-backend/internal/pkg/response"
)

const maxImageSizeBytes = 10 << 20 // 10 MiB

type Handler struct {
	service hotelimage.Service
}

func NewHandler(service hotelimage.Service) *Handler {
	return &Handler{service: service}
}

// HotelParams binds the hotel id path parameter.
type HotelParams struct {
	HotelID int64 `uri:"hotelId" binding:"required,min=1"`
}

// Upload accepts a multipart "image" field and stores it as a hotel photo.
func (h *Handler) Upload(c *gin.Context) {
	var params HotelParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel id"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if header.Size > maxImageSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is too large"})
		return
	}

	img, err := h.service.Upload(c.Request.Context(), header, params.HotelID)
	if err != nil {
		if errors.Is(err, hotelimage.ErrNotAnImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		response.Error(c, err)
		return
	}

	resp := UploadResponse{
		ImageID: img.ID,
		URL:     hotelimage.URL(img.ID),
	}
	if img.ThumbnailPath != nil {
		t := hotelimage.ThumbnailURL(img.ID)
		resp.ThumbnailURL = &t
	}

	c.JSON(http.StatusCreated, resp)
}

// Serve streams the full-size image.
func (h *Handler) Serve(c *gin.Context) {
	h.serve(c, func(id string) (io.ReadCloser, *hotelimage.Image, error) {
		return h.service.Download(c.Request.Context(), id)
	}, false)
}

// ServeThumbnail streams the image's thumbnail.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	h.serve(c, func(id string) (io.ReadCloser, *hotelimage.Image, error) {
		return h.service.DownloadThumbnail(c.Request.Context(), id)
	}, true)
}

func (h *Handler) serve(c *gin.Context, download func(string) (io.ReadCloser, *hotelimage.Image, error), thumbnail bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image id is required"})
		return
	}

	stream, img, err := download(id)
	if err != nil {
		if errors.Is(err, hotelimage.ErrNotFound) || errors.Is(err, hotelimage.ErrNoThumbnail) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		response.Error(c, err)
		return
	}
	defer stream.Close()

	if thumbnail {
		// Thumbnails are always JPEG.
		c.Header("Content-Type", "image/jpeg")
	} else {
		c.Header("Content-Type", img.ContentType)
	}
	c.Header("Content-Disposition", "inline; filename=\""+img.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing left to report to the client.
		return
	}
}
