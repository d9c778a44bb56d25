package controller

import (
	"event-rsvp-api/core/controller"
	"event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/params"
	"event-rsvp-api/modules/media/dto"
	"event-rsvp-api/modules/media/entity"
	"event-rsvp-api/modules/media/mapper"
	"event-rsvp-api/modules/media/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type MediaController struct {
	controller.BaseController
	service *service.MediaService
}

func NewMediaController(service *service.MediaService) *MediaController {
	return &MediaController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// UploadMedia accepts a multipart upload with title/description/type form
// fields and a "file" part.
// @Summary Upload a media file
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "media file"
// @Param title formData string false "display title"
// @Param type formData string true "video | image"
// @Success 201 {object} controller.SuccessResponse{data=dto.MediaResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Router /media [post]
func (c *MediaController) UploadMedia(ctx echo.Context) error {
	req := new(dto.UploadMediaRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("MediaController:UploadMedia:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "A file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("MediaController:UploadMedia:Open:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Could not read the uploaded file")
	}
	defer file.Close()

	media, appErr := c.service.Upload(ctx.Request().Context(), &service.UploadInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.MediaType(req.Type),
		FileName:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, mapper.ToMediaResponse(media), "Media uploaded")
}

// GetMedia lists media with pagination and optional type/status filters.
func (c *MediaController) GetMedia(ctx echo.Context) error {
	qp := params.FromEchoContext(ctx)
	mediaType := entity.MediaType(ctx.QueryParam("type"))
	if mediaType != "" && !mediaType.Valid() {
		return c.BadRequest(errors.ErrInvalidRequestData, "Type must be video or image")
	}
	status := entity.MediaStatus(ctx.QueryParam("status"))
	switch status {
	case "", entity.MediaStatusActive, entity.MediaStatusInactive:
	default:
		return c.BadRequest(errors.ErrInvalidRequestData, "Status must be active or inactive")
	}

	page, appErr := c.service.ListMedia(ctx.Request().Context(), &qp, mediaType, status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToPaginatedMediaResponse(page), "Media retrieved")
}

// GetActiveMedia returns the live item of the requested type; public, the
// landing page pulls its background from here.
// @Summary Get the active media item of a type
// @Tags media
// @Produce json
// @Param type path string true "video | image"
// @Success 200 {object} controller.SuccessResponse{data=dto.MediaResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Router /media/active/{type} [get]
func (c *MediaController) GetActiveMedia(ctx echo.Context) error {
	media, appErr := c.service.GetActiveMedia(ctx.Request().Context(), entity.MediaType(ctx.Param("type")))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToMediaResponse(media), "Active media retrieved")
}

func (c *MediaController) GetMediaByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid media ID")
	}
	media, appErr := c.service.GetMediaByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToMediaResponse(media), "Media retrieved")
}

func (c *MediaController) UpdateMedia(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid media ID")
	}

	req := new(dto.UpdateMediaRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("MediaController:UpdateMedia:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	media, appErr := c.service.UpdateMedia(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToMediaResponse(media), "Media updated")
}

// ActivateMedia makes the item the live one of its type.
func (c *MediaController) ActivateMedia(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid media ID")
	}
	media, appErr := c.service.ActivateMedia(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToMediaResponse(media), "Media activated")
}

func (c *MediaController) DeactivateMedia(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid media ID")
	}
	media, appErr := c.service.DeactivateMedia(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToMediaResponse(media), "Media deactivated")
}

func (c *MediaController) DeleteMedia(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid media ID")
	}
	if appErr := c.service.DeleteMedia(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Media deleted")
}

func (c *MediaController) GetMediaStats(ctx echo.Context) error {
	stats, appErr := c.service.MediaStats(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.MediaStatsResponse{
		TotalMedia:  stats.TotalMedia,
		TotalVideos: stats.TotalVideos,
		TotalImages: stats.TotalImages,
		ActiveMedia: stats.ActiveMedia,
		TotalBytes:  stats.TotalBytes,
	}, "Media stats retrieved")
}
