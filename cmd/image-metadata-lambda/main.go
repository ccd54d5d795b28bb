package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/objectstore"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/recorder"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/tablestore"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/version"
)

//
// main entry point
//
func main() {

	log.Printf("===> image metadata handler starting up (version: %s) <===", version.Version())

	table := os.Getenv("METADATA_TABLE_NAME")
	if len(table) == 0 {
		log.Fatalf("METADATA_TABLE_NAME cannot be blank")
	}

	sess, err := session.NewSession()
	if err != nil {
		log.Fatal(err)
	}

	// the stores are created once here, not per invocation
	handler := recorder.NewHandler(
		objectstore.NewS3ObjectStore(sess),
		tablestore.NewDynamoRecordStore(sess, table))

	lambda.Start(func(ctx context.Context, event events.S3Event) (recorder.Response, error) {
		return handler.HandleEvent(ctx, event), nil
	})
}

//
// end of file
//
