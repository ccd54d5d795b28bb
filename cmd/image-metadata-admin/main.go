package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/cobra"
)

var (
	tableName string
	region    string
)

// rootCmd is the base command for the admin tool
var rootCmd = &cobra.Command{
	Use:   "image-metadata-admin",
	Short: "Admin tool for the image metadata table",
	Long:  "Inspect and repair the image metadata table from the commandline.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tableName, "table", os.Getenv("METADATA_TABLE_NAME"), "Metadata table name")
	rootCmd.PersistentFlags().StringVar(&region, "region", os.Getenv("AWS_REGION"), "AWS region")
}

// requireTable ensures a table name was supplied one way or another
func requireTable() error {
	if len(tableName) == 0 {
		return fmt.Errorf("no table name, use --table or set METADATA_TABLE_NAME")
	}
	return nil
}

// newSession creates the AWS session used by the subcommands
func newSession() (*session.Session, error) {
	if len(region) != 0 {
		return session.NewSession(&aws.Config{Region: aws.String(region)})
	}
	return session.NewSession()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//
// end of file
//
