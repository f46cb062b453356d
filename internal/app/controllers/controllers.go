package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/models/dto"
)

// parseIDParam parses a path parameter as an int64 id, writing the
// 400 response itself on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindingError writes the standard 400 response for a failed JSON or
// query binding.
func bindingError(ctx *gin.Context, err error, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
