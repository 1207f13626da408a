// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LeeDigitalWorks/s3probe/pkg/config"
	"github.com/LeeDigitalWorks/s3probe/pkg/fixtures"
	"github.com/LeeDigitalWorks/s3probe/pkg/probelog"
	"github.com/LeeDigitalWorks/s3probe/pkg/s3ops"
	"github.com/LeeDigitalWorks/s3probe/pkg/suite"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the test suite",
	Long: `Run the full test suite or a single named test against the
configured endpoint. Exactly one of --all or --test must be given.`,
	Run: runSuite,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("all", false, "Run every registered test in order")
	runCmd.Flags().String("test", "", "Run a single test by name")
	runCmd.Flags().String("region", "", "Override the configured region")
	runCmd.Flags().String("endpoint", "", "Override the configured endpoint URL")
}

func runSuite(cmd *cobra.Command, args []string) {
	runAll, _ := cmd.Flags().GetBool("all")
	testName, _ := cmd.Flags().GetString("test")

	if runAll == (testName != "") {
		cmd.Usage()
		os.Exit(1)
	}

	loader := NewFlagLoader(cmd)
	cfg, err := config.Load(loader.String("credentials"))
	if err != nil {
		probelog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cmd.Flags().Changed("region") {
		cfg.Region, _ = cmd.Flags().GetString("region")
	}
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint, _ = cmd.Flags().GetString("endpoint")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ops, err := s3ops.New(ctx, cfg)
	if err != nil {
		probelog.Fatal().Err(err).Msg("Failed to build storage client")
	}

	st, err := suite.New(ops, fixtures.NewManager())
	if err != nil {
		probelog.Fatal().Err(err).Msg("Invalid scenario registry")
	}

	if runAll {
		if _, err := st.RunAll(ctx); err != nil {
			probelog.Fatal().Err(err).Msg("Test run aborted")
		}
		return
	}

	_, err = st.RunOne(ctx, testName)
	var unknown *suite.UnknownScenarioError
	if errors.As(err, &unknown) {
		fmt.Printf("Test %q not found. Available tests:\n", testName)
		printScenarios(st.Registry())
		os.Exit(1)
	}
	if err != nil {
		probelog.Fatal().Err(err).Msg("Test run aborted")
	}
}

func printScenarios(reg *suite.Registry) {
	for _, group := range reg.ByCategory() {
		fmt.Printf("\n%s:\n", group.Category)
		for _, name := range group.Names {
			fmt.Printf("  %s\n", name)
		}
	}
}
