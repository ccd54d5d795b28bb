package main

import (
	"log"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/uvalib/virgo4-sqs-sdk/awssqs"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/diagnostics"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/objectstore"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/recorder"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/tablestore"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/version"
)

//
// main entry point
//
func main() {

	log.Printf("===> %s service starting up (version: %s) <===", os.Args[0], version.Version())

	// Get config params and use them to init service context. Any issues are fatal
	cfg := LoadConfiguration()

	// load our AWS sqs helper object
	aws, err := awssqs.NewAwsSqs(awssqs.AwsSqsConfig{MessageBucketName: cfg.MessageBucketName})
	fatalIfError(err)

	// one AWS session shared by the S3 and DynamoDB clients
	sess, err := session.NewSession()
	fatalIfError(err)

	// create the stores once and hand them to the notification handler
	handler := recorder.NewHandler(
		objectstore.NewS3ObjectStore(sess),
		tablestore.NewDynamoRecordStore(sess, cfg.TableName))

	// get the queue handles from the queue names
	inQueueHandle, err := aws.QueueHandle(cfg.InQueueName)
	fatalIfError(err)

	var auditQueueHandle awssqs.QueueHandle
	if cfg.AuditQueueName != "" {
		auditQueueHandle, err = aws.QueueHandle(cfg.AuditQueueName)
		fatalIfError(err)
	}

	// serve the healthcheck and version endpoints
	stats := &diagnostics.Stats{}
	if cfg.DiagnosticsPort != 0 {
		diagnostics.Start(cfg.DiagnosticsPort, stats)
	}

	// create the notification channel
	notificationsChan := make(chan notification, cfg.WorkerQueueSize)

	// start workers here
	for w := 1; w <= cfg.Workers; w++ {
		go worker(w, *cfg, handler, aws, inQueueHandle, auditQueueHandle, stats, notificationsChan)
	}

	for {
		// wait for the next notification with something to record
		notif, err := getInboundNotification(*cfg, aws, inQueueHandle)
		fatalIfError(err)

		notificationsChan <- *notif
	}
}

// fatalIfError fails out when the error is set
func fatalIfError(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

//
// end of file
//
