package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"carhub/internal/services"
	"carhub/internal/transport/httpdto"
	carhub_errors "carhub/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CarHandler handles the car listing endpoints. Every route sits behind the
// auth middleware, so the owner is always present in the request context.
type CarHandler struct {
	service *services.CarService
}

func NewCarHandler(service *services.CarService) *CarHandler {
	return &CarHandler{service: service}
}

func (h *CarHandler) AddCar(c *gin.Context) {
	owner, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	tags := c.PostForm("tags")

	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Success: false, Message: "Title and description are required"})
		return
	}

	files := formImages(c)
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Success: false, Message: "No images uploaded"})
		return
	}

	images, closeImages, err := openImages(files)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Success: false, Message: "File upload error", Error: err.Error()})
		return
	}
	defer closeImages()

	created, err := h.service.AddCar(c.Request.Context(), owner.ID, services.AddCarInput{
		Title:       title,
		Description: description,
		Tags:        tags,
		Images:      images,
	})
	if err != nil {
		writeCarError(c, err, "Error saving car")
		return
	}

	c.JSON(http.StatusCreated, httpdto.CarResponse{
		Success: true,
		Message: "Car added successfully",
		Car:     httpdto.NewCarDTO(created),
	})
}

func (h *CarHandler) GetUserCars(c *gin.Context) {
	owner, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
		return
	}

	cars, err := h.service.GetUserCars(c.Request.Context(), owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Success: false, Message: "Error fetching cars", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpdto.CarListResponse{
		Success: true,
		Count:   len(cars),
		Cars:    httpdto.NewCarDTOs(cars),
	})
}

func (h *CarHandler) SearchCars(c *gin.Context) {
	owner, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
		return
	}

	keyword := c.Query("keyword")
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	res, err := h.service.SearchCars(c.Request.Context(), owner.ID, keyword, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Success: false, Message: "Error searching cars", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, httpdto.CarSearchResponse{
		Success:     true,
		Count:       len(res.Cars),
		Total:       res.Total,
		TotalPages:  res.TotalPages,
		CurrentPage: res.Page,
		Cars:        httpdto.NewCarDTOs(res.Cars),
	})
}

func (h *CarHandler) GetCarDetails(c *gin.Context) {
	owner, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
		return
	}

	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Success: false, Message: "Car not found"})
		return
	}

	found, err := h.service.GetCarDetails(c.Request.Context(), carID, owner.ID)
	if err != nil {
		writeCarError(c, err, "Error fetching car details")
		return
	}

	c.JSON(http.StatusOK, httpdto.CarResponse{
		Success: true,
		Car:     httpdto.NewCarDTO(found),
	})
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	owner, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
		return
	}

	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Success: false, Message: "Car not found"})
		return
	}

	images, closeImages, err := openImages(formImages(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Success: false, Message: "Error uploading files", Error: err.Error()})
		return
	}
	defer closeImages()

	updated, err := h.service.UpdateCar(c.Request.Context(), carID, owner.ID, services.UpdateCarInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Tags:        c.PostForm("tags"),
		Images:      images,
	})
	if err != nil {
		writeCarError(c, err, "Error updating car")
		return
	}

	c.JSON(http.StatusOK, httpdto.CarResponse{
		Success: true,
		Message: "Car updated successfully",
		Car:     httpdto.NewCarDTO(updated),
	})
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	owner, ok := services.UserFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.MessageResponse{Message: "No token, authorization denied"})
		return
	}

	carID, err := uuid.Parse(c.Param("carId"))
	if err != nil {
		c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Success: false, Message: "Car not found"})
		return
	}

	if err := h.service.DeleteCar(c.Request.Context(), carID, owner.ID); err != nil {
		writeCarError(c, err, "Error deleting car")
		return
	}

	c.JSON(http.StatusOK, httpdto.CarDeleteResponse{
		Success: true,
		Message: "Car deleted successfully",
	})
}

// writeCarError maps service failures to the HTTP surface.
func writeCarError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, carhub_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.ErrorResponse{Success: false, Message: "Car not found"})
	case errors.Is(err, carhub_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Success: false, Message: "Title and description are required"})
	case errors.Is(err, carhub_errors.ErrTooLarge), errors.Is(err, carhub_errors.ErrNotUploaded):
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Success: false, Message: "File upload error", Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Success: false, Message: fallback, Error: err.Error()})
	}
}

func formImages(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// openImages opens every multipart file and hands the service a reader per
// image. The returned closer must be deferred by the caller.
func openImages(files []*multipart.FileHeader) ([]services.ImageUpload, func(), error) {
	images := make([]services.ImageUpload, 0, len(files))
	var opened []multipart.File

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		images = append(images, services.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	return images, closeAll, nil
}
