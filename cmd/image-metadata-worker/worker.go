package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/uvalib/virgo4-sqs-sdk/awssqs"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/diagnostics"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/models"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/recorder"
)

// auditEvent is the audit message payload
type auditEvent struct {
	Filename   string `json:"filename"`
	Bucket     string `json:"bucket"`
	RecordedAt string `json:"recorded_at"`
}

// worker handles notifications one at a time. The inbound message is only
// deleted after the whole event is recorded; a failure leaves it on the
// queue to be redelivered when the visibility timeout lapses.
func worker(id int, config ServiceConfig, handler *recorder.Handler, aws awssqs.AWS_SQS, inQueueHandle awssqs.QueueHandle, auditQueueHandle awssqs.QueueHandle, stats *diagnostics.Stats, notifications <-chan notification) {

	count := 0
	for notif := range notifications {

		start := time.Now()
		res := handler.HandleEvent(context.Background(), notif.Event)

		if res.StatusCode != http.StatusOK {
			log.Printf("ERROR: worker %d returned %d (%s), leaving notification for redelivery", id, res.StatusCode, res.Body)
			stats.IncFailed()
			continue
		}

		// the event was fully recorded, ack the message
		deleteInboundMessage(aws, inQueueHandle, notif.Message)
		stats.IncProcessed()

		if config.AuditQueueName != "" {
			err := sendAuditMessages(aws, auditQueueHandle, notif.Event)
			if err != nil {
				log.Printf("WARNING: worker %d audit publish failed (%s)", id, err.Error())
			}
		}

		count++
		duration := time.Since(start)
		log.Printf("INFO: worker %d: %s in %0.2f seconds (%d notification(s) handled)", id, res.Body, duration.Seconds(), count)
	}

	// should never get here
}

// sendAuditMessages publishes one audit message per object record so
// downstream consumers can track table activity
func sendAuditMessages(aws awssqs.AWS_SQS, auditQueueHandle awssqs.QueueHandle, event events.S3Event) error {

	count := len(event.Records)
	if count == 0 {
		return nil
	}

	batch := make([]awssqs.Message, 0, count)
	for _, record := range event.Records {
		batch = append(batch, constructAuditMessage(record.S3.Bucket.Name, record.S3.Object.Key))
	}

	// send in blocks, batch operations have a size limit
	blockSize := int(awssqs.MAX_SQS_BLOCK_COUNT)
	for start := 0; start < len(batch); start += blockSize {

		end := start + blockSize
		if end > len(batch) {
			end = len(batch)
		}

		opStatus, err := aws.BatchMessagePut(auditQueueHandle, batch[start:end])
		if err != nil {
			if err != awssqs.ErrOneOrMoreOperationsUnsuccessful {
				return err
			}
		}

		// if one or more message failed...
		if err == awssqs.ErrOneOrMoreOperationsUnsuccessful {

			// check the operation results
			for ix, op := range opStatus {
				if op == false {
					log.Printf("WARNING: audit message %d failed to send", start+ix)
				}
			}
		}
	}

	return nil
}

// constructAuditMessage creates the audit message for one recorded object
func constructAuditMessage(bucket string, key string) awssqs.Message {

	attributes := make([]awssqs.Attribute, 0, 3)
	attributes = append(attributes, awssqs.Attribute{Name: "id", Value: key})
	attributes = append(attributes, awssqs.Attribute{Name: "type", Value: "metadata/record"})
	attributes = append(attributes, awssqs.Attribute{Name: "source", Value: bucket})

	payload, _ := json.Marshal(auditEvent{
		Filename:   key,
		Bucket:     bucket,
		RecordedAt: models.FormatUploadTime(time.Now()),
	})
	return awssqs.Message{Attribs: attributes, Payload: payload}
}

//
// end of file
//
