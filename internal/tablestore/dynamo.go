package tablestore

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/models"
)

// the partition key attribute name
const filenameAttribute = "filename"

// this is our record store implementation
type dynamoRecordStoreImpl struct {
	svc   dynamodbiface.DynamoDBAPI
	table string
}

// NewDynamoRecordStore creates a record store backed by a DynamoDB table.
// The supplied session is shared with the other AWS clients.
func NewDynamoRecordStore(sess *session.Session, table string) RecordStore {

	return &dynamoRecordStoreImpl{svc: dynamodb.New(sess), table: table}
}

func (d *dynamoRecordStoreImpl) Upsert(ctx context.Context, rec models.MetadataRecord) error {

	item, err := dynamodbattribute.MarshalMap(rec)
	if err != nil {
		return err
	}

	_, err = d.svc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		log.Printf("ERROR: put %s to %s (%s)", rec.Filename, d.table, err.Error())
		return mapDynamoError(rec.Filename, err)
	}

	return nil
}

func (d *dynamoRecordStoreImpl) Get(ctx context.Context, filename string) (*models.MetadataRecord, error) {

	result, err := d.svc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			filenameAttribute: {S: aws.String(filename)},
		},
	})
	if err != nil {
		log.Printf("ERROR: get %s from %s (%s)", filename, d.table, err.Error())
		return nil, mapDynamoError(filename, err)
	}

	// an empty item means the record does not exist
	if len(result.Item) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, RecordNotFoundError)
	}

	rec := models.MetadataRecord{}
	err = dynamodbattribute.UnmarshalMap(result.Item, &rec)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (d *dynamoRecordStoreImpl) Delete(ctx context.Context, filename string) error {

	_, err := d.svc.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			filenameAttribute: {S: aws.String(filename)},
		},
	})
	if err != nil {
		log.Printf("ERROR: delete %s from %s (%s)", filename, d.table, err.Error())
		return mapDynamoError(filename, err)
	}

	return nil
}

// mapDynamoError translates the AWS error space into our error space,
// keeping the record key in the message
func mapDynamoError(filename string, err error) error {

	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case dynamodb.ErrCodeProvisionedThroughputExceededException,
			dynamodb.ErrCodeRequestLimitExceeded,
			"ThrottlingException":
			return fmt.Errorf("%s: %w", filename, TableThrottledError)
		}
	}

	return err
}

//
// end of file
//
