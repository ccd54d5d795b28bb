package objectstore

import (
	"context"
	"fmt"
	"time"
)

// errors
var ObjectNotFoundError = fmt.Errorf("Object not found")
var AccessDeniedError = fmt.Errorf("Access to object denied")

// ObjectMeta describes one stored object
type ObjectMeta struct {
	Bucket       string
	Key          string
	Size         int64
	LastModified time.Time
}

// the ObjectStore interface
type ObjectStore interface {

	// GetMetadata queries the store for the size and last modified time of
	// one object. The object contents are never fetched.
	GetMetadata(ctx context.Context, bucket string, key string) (*ObjectMeta, error)

	// List walks every object under the prefix and calls fn for each one.
	// The walk stops at the first error returned by fn.
	List(ctx context.Context, bucket string, prefix string, fn func(ObjectMeta) error) error
}

//
// end of file
//
