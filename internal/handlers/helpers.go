package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/logger"
)

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// bindingError maps a ShouldBindJSON failure onto the input-error taxonomy.
// Validation failures report the first violated field, in struct order, so
// the create operation fails fast on amount, then description, then the
// presence and shape of category/date. Anything that is not a field
// validation failure is a malformed payload.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Wrap(apperrors.ErrMalformedRequest, err)
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Amount":
		return apperrors.ErrInvalidAmount
	case "Description":
		return apperrors.ErrInvalidDescription
	case "Category":
		if fe.Tag() == "required" {
			return apperrors.WithMessage(apperrors.ErrMissingField, "Missing required field: category")
		}
		return apperrors.ErrInvalidCategory
	case "Date":
		if fe.Tag() == "required" {
			return apperrors.WithMessage(apperrors.ErrMissingField, "Missing required field: date")
		}
		return apperrors.ErrInvalidDate
	}
	return apperrors.Wrap(apperrors.ErrMalformedRequest, err)
}
