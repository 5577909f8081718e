package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPutObjectAPI struct {
	mock.Mock
}

func (m *MockPutObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.PutObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestS3Storage_UploadReturnsPublicURL(t *testing.T) {
	client := new(MockPutObjectAPI)
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		return aws.ToString(in.Bucket) == "eats-uploads" &&
			aws.ToString(in.Key) == "abc.png" &&
			aws.ToString(in.ContentType) == "image/png" &&
			in.ACL == types.ObjectCannedACLPublicRead &&
			string(body) == "png-bytes"
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	storage := newS3Storage(client, "eats-uploads", "https://cdn.example.com/")

	url, err := storage.Upload(t.Context(), "abc.png", "image/png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/abc.png", url)
	client.AssertExpectations(t)
}

func TestS3Storage_UploadFailure(t *testing.T) {
	client := new(MockPutObjectAPI)
	failure := errors.New("access denied")
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, failure).Once()

	storage := newS3Storage(client, "eats-uploads", "https://cdn.example.com")

	url, err := storage.Upload(t.Context(), "abc.png", "", strings.NewReader("x"))

	require.ErrorIs(t, err, failure)
	assert.Empty(t, url)
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(t.Context(), "", "eu-west-1", "")

	require.ErrorIs(t, err, ErrBucketIsRequired)
}
