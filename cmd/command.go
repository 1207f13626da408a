// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "s3probe",
	Short: "S3Probe - S3 API compatibility test suite",
	Long: `S3Probe runs an automated test suite against any S3-compatible
object storage endpoint. It exercises bucket, object, multipart,
encryption, lifecycle and Object Lock operations, verifies content
integrity, and prints a pass/fail summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().String("credentials", "credentials.json", "Path to the credentials file (JSON or YAML)")
	viper.SetDefault("credentials", "credentials.json")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
