package main

import (
	"Food-Wastage-Management/cmd/config"
	migration "Food-Wastage-Management/cmd/database/migrate"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/pkg/loader"
	"Food-Wastage-Management/pkg/report"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configPath string
	sourceDir  string
	filePrefix string
	outDir     string
)

var rootCmd = &cobra.Command{
	Use:   "foodwaste",
	Short: "Local food wastage management backend",
	Long: `foodwaste serves the food listing dashboard API and manages the
providers, receivers, food_listings and claims tables behind it.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.LoadConfigFile(configPath)
		utils.SetupLogger()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		app, err := config.NewApp(db)
		if err != nil {
			return err
		}

		go func() {
			<-cmd.Context().Done()
			_ = app.Shutdown()
		}()

		return app.Listen(":" + utils.GetConfig("APP_PORT"))
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the four tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}
		return migration.Migrate(db)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the raw CSV files and write cleaned_*.csv",
	Long: `Reads providers.csv, receivers.csv, food_listings.csv and claims.csv from
--source (a directory or s3://bucket/prefix), drops exact duplicate rows,
title-cases cities, fills missing contacts and normalizes dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loader.OpenSource(sourceDir)
		if err != nil {
			return err
		}

		svc := loader.NewLoaderService(nil, nil)
		stats, err := svc.Clean(cmd.Context(), src, filePrefix, outDir)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS\tDUPLICATES")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\n", s.Table, s.Rows, s.DuplicatesDropped)
		}
		return w.Flush()
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Clean the CSV files and bulk insert them",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loader.OpenSource(sourceDir)
		if err != nil {
			return err
		}

		db, err := connectMigrated()
		if err != nil {
			return err
		}

		svc := loader.NewLoaderService(loader.NewLoaderRepository(db), nil)
		stats, err := svc.Load(cmd.Context(), src, filePrefix)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS\tDUPLICATES\tINSERTED")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", s.Table, s.Rows, s.DuplicatesDropped, s.Inserted)
		}
		return w.Flush()
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [name]",
	Short: "Run a report by name, key or position; list reports without one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		if len(args) == 0 {
			svc := report.NewReportService(nil, nil)
			fmt.Fprintln(w, "#\tKEY\tNAME")
			for _, info := range svc.ListReports() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", info.Position, info.Key, info.Name)
			}
			return w.Flush()
		}

		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		svc := report.NewReportService(report.NewReportRepository(db), nil)
		table, err := svc.RunReport(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n", table.Name, table.Chart)
		header := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			header = append(header, col.Name)
		}
		fmt.Fprintln(w, strings.Join(header, "\t"))
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row))
			for _, v := range row {
				cells = append(cells, fmt.Sprint(v))
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
		return w.Flush()
	},
}

func connectMigrated() (*gorm.DB, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	for _, cmd := range []*cobra.Command{cleanCmd, loadCmd} {
		cmd.Flags().StringVar(&sourceDir, "source", ".", "directory or s3://bucket/prefix holding the CSV files")
		cmd.Flags().StringVar(&filePrefix, "prefix", "", "file name prefix, e.g. cleaned_")
	}
	cleanCmd.Flags().StringVar(&outDir, "out", "cleaned", "directory for the cleaned CSV files")

	rootCmd.AddCommand(serveCmd, migrateCmd, cleanCmd, loadCmd, reportCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
