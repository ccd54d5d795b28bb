package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/version"
)

// versionCmd prints the build identifier
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("image-metadata-admin %s\n", version.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

//
// end of file
//
