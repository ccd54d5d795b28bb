package objectstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// fakeS3API stands in for the AWS client. Only the calls the store makes
// are implemented.
type fakeS3API struct {
	s3iface.S3API
	head    *s3.HeadObjectOutput
	headErr error
	pages   []*s3.ListObjectsV2Output
	listErr error
}

func (f *fakeS3API) HeadObjectWithContext(ctx aws.Context, input *s3.HeadObjectInput, opts ...request.Option) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return f.head, nil
}

func (f *fakeS3API) ListObjectsV2PagesWithContext(ctx aws.Context, input *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool, opts ...request.Option) error {
	if f.listErr != nil {
		return f.listErr
	}
	for ix, page := range f.pages {
		if fn(page, ix == len(f.pages)-1) == false {
			break
		}
	}
	return nil
}

func TestGetMetadata(t *testing.T) {

	uploaded := time.Date(2025, 2, 27, 12, 34, 56, 789000000, time.UTC)
	fake := &fakeS3API{head: &s3.HeadObjectOutput{
		ContentLength: aws.Int64(345678),
		LastModified:  aws.Time(uploaded),
	}}
	store := &s3ObjectStoreImpl{svc: fake}

	meta, err := store.GetMetadata(context.Background(), "image-upload-bucket-123", "example-image.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if meta.Bucket != "image-upload-bucket-123" {
		t.Fatalf("wrong bucket: %s", meta.Bucket)
	}
	if meta.Key != "example-image.jpg" {
		t.Fatalf("wrong key: %s", meta.Key)
	}
	if meta.Size != 345678 {
		t.Fatalf("wrong size: %d", meta.Size)
	}
	if meta.LastModified.Equal(uploaded) == false {
		t.Fatalf("wrong last modified: %s", meta.LastModified)
	}
}

func TestGetMetadataNotFound(t *testing.T) {

	fake := &fakeS3API{headErr: awserr.NewRequestFailure(
		awserr.New("NotFound", "Not Found", nil), 404, "request-id")}
	store := &s3ObjectStoreImpl{svc: fake}

	_, err := store.GetMetadata(context.Background(), "image-upload-bucket-123", "no-such-image.jpg")
	if errors.Is(err, ObjectNotFoundError) == false {
		t.Fatalf("expected ObjectNotFoundError, got %v", err)
	}

	// the message identifies the missing object
	if strings.Contains(err.Error(), "no-such-image.jpg") == false {
		t.Fatalf("expected the object key in the message, got %s", err.Error())
	}
}

func TestGetMetadataNotFoundByStatusOnly(t *testing.T) {

	// a HEAD failure can surface with an unhelpful code and only the status to go on
	fake := &fakeS3API{headErr: awserr.NewRequestFailure(
		awserr.New("UnknownError", "unknown", nil), 404, "request-id")}
	store := &s3ObjectStoreImpl{svc: fake}

	_, err := store.GetMetadata(context.Background(), "image-upload-bucket-123", "no-such-image.jpg")
	if errors.Is(err, ObjectNotFoundError) == false {
		t.Fatalf("expected ObjectNotFoundError, got %v", err)
	}
}

func TestGetMetadataAccessDenied(t *testing.T) {

	fake := &fakeS3API{headErr: awserr.NewRequestFailure(
		awserr.New("Forbidden", "Forbidden", nil), 403, "request-id")}
	store := &s3ObjectStoreImpl{svc: fake}

	_, err := store.GetMetadata(context.Background(), "locked-bucket", "example-image.jpg")
	if errors.Is(err, AccessDeniedError) == false {
		t.Fatalf("expected AccessDeniedError, got %v", err)
	}
}

func TestGetMetadataOtherErrorsPassThrough(t *testing.T) {

	boom := fmt.Errorf("the network is down")
	fake := &fakeS3API{headErr: boom}
	store := &s3ObjectStoreImpl{svc: fake}

	_, err := store.GetMetadata(context.Background(), "image-upload-bucket-123", "example-image.jpg")
	if err != boom {
		t.Fatalf("expected the original error, got %v", err)
	}
}

func TestList(t *testing.T) {

	fake := &fakeS3API{pages: []*s3.ListObjectsV2Output{
		{Contents: []*s3.Object{
			{Key: aws.String("a.jpg"), Size: aws.Int64(1), LastModified: aws.Time(time.Now())},
			{Key: aws.String("b.jpg"), Size: aws.Int64(2), LastModified: aws.Time(time.Now())},
		}},
		{Contents: []*s3.Object{
			{Key: aws.String("c.jpg"), Size: aws.Int64(3), LastModified: aws.Time(time.Now())},
		}},
	}}
	store := &s3ObjectStoreImpl{svc: fake}

	seen := make([]string, 0)
	err := store.List(context.Background(), "image-upload-bucket-123", "", func(meta ObjectMeta) error {
		seen = append(seen, meta.Key)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(seen))
	}
	if seen[0] != "a.jpg" || seen[1] != "b.jpg" || seen[2] != "c.jpg" {
		t.Fatalf("wrong keys: %v", seen)
	}
}

func TestListStopsOnCallbackError(t *testing.T) {

	fake := &fakeS3API{pages: []*s3.ListObjectsV2Output{
		{Contents: []*s3.Object{
			{Key: aws.String("a.jpg")},
			{Key: aws.String("b.jpg")},
		}},
	}}
	store := &s3ObjectStoreImpl{svc: fake}

	boom := fmt.Errorf("table write failed")
	seen := 0
	err := store.List(context.Background(), "image-upload-bucket-123", "", func(meta ObjectMeta) error {
		seen++
		return boom
	})
	if err != boom {
		t.Fatalf("expected the callback error, got %v", err)
	}
	if seen != 1 {
		t.Fatalf("expected the walk to stop after 1 object, saw %d", seen)
	}
}

func TestListUnknownBucket(t *testing.T) {

	fake := &fakeS3API{listErr: awserr.New(s3.ErrCodeNoSuchBucket, "The specified bucket does not exist", nil)}
	store := &s3ObjectStoreImpl{svc: fake}

	err := store.List(context.Background(), "no-such-bucket", "", func(meta ObjectMeta) error {
		return nil
	})
	if errors.Is(err, ObjectNotFoundError) == false {
		t.Fatalf("expected ObjectNotFoundError, got %v", err)
	}
}

//
// end of file
//
