package objectstore

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// this is our object store implementation
type s3ObjectStoreImpl struct {
	svc s3iface.S3API
}

// NewS3ObjectStore creates an object store backed by AWS S3. The supplied
// session is shared with the other AWS clients.
func NewS3ObjectStore(sess *session.Session) ObjectStore {

	return &s3ObjectStoreImpl{svc: s3.New(sess)}
}

func (s *s3ObjectStoreImpl) GetMetadata(ctx context.Context, bucket string, key string) (*ObjectMeta, error) {

	result, err := s.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("ERROR: head s3:/%s/%s (%s)", bucket, key, err.Error())
		return nil, mapS3Error(bucket, key, err)
	}

	meta := ObjectMeta{
		Bucket:       bucket,
		Key:          key,
		Size:         aws.Int64Value(result.ContentLength),
		LastModified: aws.TimeValue(result.LastModified),
	}
	return &meta, nil
}

func (s *s3ObjectStoreImpl) List(ctx context.Context, bucket string, prefix string, fn func(ObjectMeta) error) error {

	input := s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var walkErr error
	err := s.svc.ListObjectsV2PagesWithContext(ctx, &input,
		func(page *s3.ListObjectsV2Output, lastPage bool) bool {

			log.Printf("INFO: received %d object(s) from s3:/%s/%s", len(page.Contents), bucket, prefix)

			for _, object := range page.Contents {
				meta := ObjectMeta{
					Bucket:       bucket,
					Key:          aws.StringValue(object.Key),
					Size:         aws.Int64Value(object.Size),
					LastModified: aws.TimeValue(object.LastModified),
				}
				if e := fn(meta); e != nil {
					walkErr = e
					return false
				}
			}
			return true
		})

	if err != nil {
		log.Printf("ERROR: list s3:/%s/%s (%s)", bucket, prefix, err.Error())
		return mapS3Error(bucket, prefix, err)
	}
	return walkErr
}

// mapS3Error translates the AWS error space into our error space, keeping
// the object coordinates in the message
func mapS3Error(bucket string, key string, err error) error {

	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return fmt.Errorf("s3:/%s/%s: %w", bucket, key, ObjectNotFoundError)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("s3:/%s/%s: %w", bucket, key, AccessDeniedError)
		}
	}

	// a HEAD request has no error body so sometimes all we have is the status code
	if reqErr, ok := err.(awserr.RequestFailure); ok {
		switch reqErr.StatusCode() {
		case http.StatusNotFound:
			return fmt.Errorf("s3:/%s/%s: %w", bucket, key, ObjectNotFoundError)
		case http.StatusForbidden:
			return fmt.Errorf("s3:/%s/%s: %w", bucket, key, AccessDeniedError)
		}
	}

	return err
}

//
// end of file
//
