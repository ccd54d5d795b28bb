package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/uvalib/virgo4-sqs-sdk/awssqs"
)

// notification is one inbound S3 event plus the queue message it arrived
// in. The message is needed later to ack the notification.
type notification struct {
	Event   events.S3Event
	Message awssqs.Message
}

// getInboundNotification blocks until an S3 event with at least one object
// record arrives on the inbound queue
func getInboundNotification(config ServiceConfig, aws awssqs.AWS_SQS, inQueueHandle awssqs.QueueHandle) (*notification, error) {

	for {

		messages, err := aws.BatchMessageGet(inQueueHandle, 1, time.Duration(config.PollTimeOut)*time.Second)
		if err != nil {
			return nil, err
		}

		// did we get anything to process
		if len(messages) != 1 {
			log.Printf("No notifications...")
			continue
		}

		log.Printf("Received new notification")

		event, err := decodeS3Event(messages[0])
		if err != nil {
			// a message that cannot be decoded will never succeed, remove it
			log.Printf("WARNING: deleting undecodable notification")
			deleteInboundMessage(aws, inQueueHandle, messages[0])
			continue
		}

		// bucket lifecycle notifications (s3:TestEvent and friends) contain no records
		if len(event.Records) == 0 {
			log.Printf("Not an interesting notification, ignoring it")
			deleteInboundMessage(aws, inQueueHandle, messages[0])
			continue
		}

		return &notification{Event: event, Message: messages[0]}, nil
	}
}

//
// turn a message received from the inbound queue into an S3 event
// containing zero or more object records
//
func decodeS3Event(message awssqs.Message) (events.S3Event, error) {

	event := events.S3Event{}
	err := json.Unmarshal([]byte(message.Payload), &event)
	if err != nil {
		log.Printf("ERROR: json unmarshal: %s", err)
		return event, err
	}
	return event, nil
}

// deleteInboundMessage acks one notification so it is not delivered again
func deleteInboundMessage(aws awssqs.AWS_SQS, inQueueHandle awssqs.QueueHandle, message awssqs.Message) {

	delMessages := make([]awssqs.Message, 0, 1)
	delMessages = append(delMessages, message)
	opStatus, err := aws.BatchMessageDelete(inQueueHandle, delMessages)
	if err != nil {
		if err != awssqs.ErrOneOrMoreOperationsUnsuccessful {
			log.Printf("ERROR: message delete (%s)", err.Error())
			return
		}
	}

	// check the operation results
	for ix, op := range opStatus {
		if op == false {
			log.Printf("ERROR: message %d failed to delete", ix)
		}
	}
}

//
// end of file
//
