package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/taskboard/taskboard/pkg/types"
)

// errInvalidInput builds a 400 response for malformed requests
func errInvalidInput(msg string) types.BaseResponse {
	return types.BaseResponse{
		Message: msg,
		Status:  fiber.StatusBadRequest,
	}
}
