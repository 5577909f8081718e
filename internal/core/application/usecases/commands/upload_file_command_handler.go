package commands

import (
	"context"
	"path/filepath"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
)

// UploadFileCommandHandler stores a file under a random key that keeps the
// original extension and returns its public URL.
type UploadFileCommandHandler struct {
	storage ports.FileStorage
}

func NewUploadFileCommandHandler(storage ports.FileStorage) UploadFileCommandHandler {
	return UploadFileCommandHandler{storage: storage}
}

func (h UploadFileCommandHandler) Handle(ctx context.Context, command UploadFileCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	key := kernel.NewToken().String() + strings.ToLower(filepath.Ext(command.Filename()))
	return h.storage.Upload(ctx, key, command.ContentType(), command.Body())
}
