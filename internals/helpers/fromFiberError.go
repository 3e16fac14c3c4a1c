package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError dipakai sebagai fiber.Config.ErrorHandler.
// *fiber.Error → status + pesan aslinya (plain text / JSON untuk /api).
// Error lain → 500 tanpa membocorkan detail.
func FromFiberError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := fiber.ErrInternalServerError.Message

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return JsonError(c, code, msg)
	}
	return PlainText(c, code, msg)
}
