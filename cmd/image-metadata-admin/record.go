package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/tablestore"
)

// getCmd prints one metadata record
var getCmd = &cobra.Command{
	Use:   "get <filename>",
	Short: "Fetch the metadata record for one filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireTable(); err != nil {
			return err
		}

		sess, err := newSession()
		if err != nil {
			return err
		}

		records := tablestore.NewDynamoRecordStore(sess, tableName)
		rec, err := records.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		buf, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", buf)
		return nil
	},
}

// deleteCmd removes one metadata record
var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Remove the metadata record for one filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireTable(); err != nil {
			return err
		}

		sess, err := newSession()
		if err != nil {
			return err
		}

		records := tablestore.NewDynamoRecordStore(sess, tableName)
		err = records.Delete(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
}

//
// end of file
//
