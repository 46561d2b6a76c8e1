package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/koprumezun/mezunhub/internal/app/models/dto"
	"github.com/koprumezun/mezunhub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// this for any error bubbling out of the store or storage layers.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrViewerNotFound,
		apperrors.ErrGroupNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrCampaignNotFound,
		apperrors.ErrPostNotFound,
		apperrors.ErrThreadNotFound,
		apperrors.ErrJobNotFound,
		apperrors.ErrPerkNotFound,
		apperrors.ErrChallengeNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
		})
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, message),
		})
	case errors.Is(err, apperrors.ErrEventSoldOut):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeEventSoldOut, message),
		})
	case errors.Is(err, apperrors.ErrInvalidAmount):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidAmount, message),
		})
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message),
		})
	case errors.Is(err, apperrors.ErrStorageFailure):
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeStorageError, "Storage operation failed"),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
