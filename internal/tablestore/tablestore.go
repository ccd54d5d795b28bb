package tablestore

import (
	"context"
	"fmt"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/models"
)

// errors
var RecordNotFoundError = fmt.Errorf("Record not found")
var TableThrottledError = fmt.Errorf("Table request rate exceeded")

// the RecordStore interface
type RecordStore interface {

	// Upsert writes the record, replacing any existing record with the
	// same filename.
	Upsert(ctx context.Context, rec models.MetadataRecord) error

	// Get fetches the record for one filename.
	Get(ctx context.Context, filename string) (*models.MetadataRecord, error)

	// Delete removes the record for one filename. Deleting a record that
	// does not exist is not an error.
	Delete(ctx context.Context, filename string) error
}

//
// end of file
//
