package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andino-energia/wellwatch/internal/domain"
	"github.com/andino-energia/wellwatch/internal/service"
)

const maxAttachmentSize = 10 * 1024 * 1024 // 10MB

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, domain.ErrValidationFailed.WithError(fmt.Errorf("invalid %s: %w", name, err))
	}
	return id, nil
}

// formAttachment reads an optional file field from a multipart form. A
// missing field is not an error.
func formAttachment(c *fiber.Ctx, field string) (*service.Attachment, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	if header.Size > maxAttachmentSize {
		return nil, domain.ErrValidationFailed.WithError(
			fmt.Errorf("%s exceeds the %dMB limit", field, maxAttachmentSize/(1024*1024)))
	}

	file, err := header.Open()
	if err != nil {
		return nil, domain.ErrBadRequest.WithError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.ErrBadRequest.WithError(err)
	}

	return &service.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
