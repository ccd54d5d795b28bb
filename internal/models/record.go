package models

import "time"

// TimestampFormat is the layout used for the upload_time attribute.
// Timestamps are recorded in UTC with millisecond precision, for
// example "2025-02-27T12:34:56.789Z".
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// MetadataRecord is one item in the metadata table. Filename is the
// partition key so writing a record for an existing filename replaces
// the earlier item.
type MetadataRecord struct {
	Filename   string `json:"filename" dynamodbav:"filename"`
	Bucket     string `json:"bucket" dynamodbav:"bucket"`
	SizeBytes  int64  `json:"size_in_bytes" dynamodbav:"size_in_bytes"`
	UploadTime string `json:"upload_time" dynamodbav:"upload_time"`
}

// FormatUploadTime renders the supplied time in the canonical
// upload_time layout, converting to UTC first.
func FormatUploadTime(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

//
// end of file
//
