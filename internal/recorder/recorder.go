package recorder

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/models"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/objectstore"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/tablestore"
)

// errors
var BadEventRecordError = fmt.Errorf("Malformed S3 event record")

// Response is the invocation result reported back to the event source
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler records object metadata in response to S3 upload notifications
type Handler struct {
	objects objectstore.ObjectStore
	records tablestore.RecordStore
}

// NewHandler creates a handler using the supplied stores. The stores are
// created once by the caller and shared across invocations.
func NewHandler(objects objectstore.ObjectStore, records tablestore.RecordStore) *Handler {

	return &Handler{objects: objects, records: records}
}

// HandleEvent processes the object records in one notification, in order,
// stopping at the first failure. It never returns a Go error; the outcome
// is reported in the response status code so the event source decides
// whether to redeliver.
func (h *Handler) HandleEvent(ctx context.Context, event events.S3Event) Response {

	processed := 0
	for _, record := range event.Records {

		bucket := record.S3.Bucket.Name
		key := record.S3.Object.Key

		err := h.processRecord(ctx, bucket, key)
		if err != nil {
			log.Printf("ERROR: processing s3:/%s/%s (%s)", bucket, key, err.Error())
			return Response{StatusCode: http.StatusInternalServerError, Body: err.Error()}
		}
		processed++
	}

	return Response{StatusCode: http.StatusOK, Body: fmt.Sprintf("metadata stored for %d object(s)", processed)}
}

// RecordObject writes the metadata record for one stored object
func (h *Handler) RecordObject(ctx context.Context, meta objectstore.ObjectMeta) error {

	rec := models.MetadataRecord{
		Filename:   meta.Key,
		Bucket:     meta.Bucket,
		SizeBytes:  meta.Size,
		UploadTime: models.FormatUploadTime(meta.LastModified),
	}
	return h.records.Upsert(ctx, rec)
}

// processRecord looks up the object named by one event record and records
// its metadata
func (h *Handler) processRecord(ctx context.Context, bucket string, key string) error {

	if len(bucket) == 0 || len(key) == 0 {
		return BadEventRecordError
	}

	start := time.Now()

	meta, err := h.objects.GetMetadata(ctx, bucket, key)
	if err != nil {
		return err
	}

	err = h.RecordObject(ctx, *meta)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	log.Printf("INFO: recorded s3:/%s/%s (%d bytes, uploaded %s) in %0.2f seconds",
		bucket, key, meta.Size, models.FormatUploadTime(meta.LastModified), duration.Seconds())
	return nil
}

//
// end of file
//
