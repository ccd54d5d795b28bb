package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/objectstore"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/recorder"
	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/tablestore"
)

// backfillCmd records metadata for objects that were uploaded before the
// notification pipeline existed
var backfillCmd = &cobra.Command{
	Use:   "backfill <bucket> [prefix]",
	Short: "Record metadata for every object already in a bucket",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireTable(); err != nil {
			return err
		}

		bucket := args[0]
		prefix := ""
		if len(args) == 2 {
			prefix = args[1]
		}

		sess, err := newSession()
		if err != nil {
			return err
		}

		objects := objectstore.NewS3ObjectStore(sess)
		handler := recorder.NewHandler(objects, tablestore.NewDynamoRecordStore(sess, tableName))

		ctx := context.Background()
		start := time.Now()
		count := 0
		err = objects.List(ctx, bucket, prefix, func(meta objectstore.ObjectMeta) error {

			if e := handler.RecordObject(ctx, meta); e != nil {
				return e
			}
			count++
			if count%100 == 0 {
				duration := time.Since(start)
				log.Printf("INFO: %d records written (%0.2f tps)", count, float64(count)/duration.Seconds())
			}
			return nil
		})
		if err != nil {
			return err
		}

		duration := time.Since(start)
		fmt.Printf("done: %d record(s) written from s3:/%s/%s (%0.2f tps)\n",
			count, bucket, prefix, float64(count)/duration.Seconds())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backfillCmd)
}

//
// end of file
//
