// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/LeeDigitalWorks/s3probe/pkg/probelog"
	"github.com/LeeDigitalWorks/s3probe/pkg/suite"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered tests grouped by category",
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := suite.Default()
		if err != nil {
			probelog.Fatal().Err(err).Msg("Invalid scenario registry")
		}
		fmt.Printf("%d registered tests\n", reg.Len())
		printScenarios(reg)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
