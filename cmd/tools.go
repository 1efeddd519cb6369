package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the catalog CSV into the product store",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appDep, err := NewAppDependency(ctx)
		if err != nil {
			log.Fatalf("Failed to create app dependency: %v", err)
		}
		defer appDep.Close()

		services, err := appDep.NewServices(ctx)
		if err != nil {
			log.Fatalf("Failed to create services: %v", err)
		}

		path := ingestFile
		if path == "" {
			path = appDep.cfg.Ingest.CSVPath
		}
		if path == "" {
			log.Fatalf("No catalog file given, use --file or ingest.csv_path")
		}

		result, err := services.IngestService.IngestFile(ctx, path)
		if err != nil {
			log.Fatalf("Ingest failed: %v", err)
		}
		fmt.Printf("rows=%d skipped=%d upserted=%d\n", result.Rows, result.Skipped, result.Upserted)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <pcode1> <pcode2>",
	Short: "Compare two products and print the narrative",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pcode1, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid pcode1 %q: %w", args[0], err)
		}
		pcode2, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid pcode2 %q: %w", args[1], err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appDep, err := NewAppDependency(ctx)
		if err != nil {
			return err
		}
		defer appDep.Close()

		services, err := appDep.NewServices(ctx)
		if err != nil {
			return err
		}

		fmt.Println(services.ComparisonService.CompareProducts(ctx, pcode1, pcode2))
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "catalog CSV path (defaults to ingest.csv_path)")
}
