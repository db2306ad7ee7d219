package response

import (
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessage(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{fiber.StatusOK, MessageOK},
		{fiber.StatusCreated, MessageOK},
		{fiber.StatusBadRequest, MessageBadRequest},
		{fiber.StatusUnauthorized, MessageUnauthorized},
		{fiber.StatusNotFound, MessageNotFound},
		{fiber.StatusConflict, MessageConflict},
		{fiber.StatusInternalServerError, MessageInternalServerError},
		{fiber.StatusBadGateway, MessageInternalServerError},
		{fiber.StatusTeapot, MessageError},
	}
	for _, tc := range cases {
		if got := DefaultMessage(tc.status); got != tc.want {
			t.Fatalf("status %d: expected %q, got %q", tc.status, tc.want, got)
		}
	}
}
