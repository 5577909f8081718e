package commands

import (
	"errors"
	"io"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrUploadFileCommandIsNotConstructed = errors.New(
	"UploadFileCommand must be created via NewUploadFileCommand constructor",
)

// UploadFileCommand stores an image, e.g. a restaurant cover or dish photo.
type UploadFileCommand struct {
	filename    string
	contentType string
	body        io.Reader

	guard guard.ConstructorGuard
}

func NewUploadFileCommand(filename, contentType string, body io.Reader) (UploadFileCommand, error) {
	var errList []error
	if filename == "" {
		errList = append(errList, errs.NewValueIsRequiredError("filename"))
	}
	if body == nil {
		errList = append(errList, errs.NewValueIsRequiredError("file"))
	}
	if err := errors.Join(errList...); err != nil {
		return UploadFileCommand{}, err
	}
	return UploadFileCommand{
		filename:    filename,
		contentType: contentType,
		body:        body,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UploadFileCommand) Validate() error {
	return c.guard.Validate(ErrUploadFileCommandIsNotConstructed)
}

func (c UploadFileCommand) Filename() string {
	return c.filename
}

func (c UploadFileCommand) ContentType() string {
	return c.contentType
}

func (c UploadFileCommand) Body() io.Reader {
	return c.body
}
