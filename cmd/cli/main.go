package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/salesops/sales-portal/internal/config"
	"github.com/salesops/sales-portal/internal/domain"
	"github.com/salesops/sales-portal/internal/importer"
	"github.com/salesops/sales-portal/internal/reporting"
	"github.com/salesops/sales-portal/internal/storage"
	"github.com/salesops/sales-portal/internal/storage/postgres"
	"github.com/salesops/sales-portal/internal/storage/sqlite"
)

var (
	cfgFile    string
	outputJSON bool
	refDate    string
	period     string
	assignee   string
	followUps  bool
)

var rootCmd = &cobra.Command{
	Use:   "salesctl",
	Short: "Sales portal operations tool",
	Long: `A CLI tool for inspecting and loading sales portal data.

It reads the same store as the API server and can show dashboard
summaries, leads, tasks and employee counts, or bulk-load records
from CSV files.`,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard summary",
	Long:  `Display revenue totals, achievement percentage, the sales series and top performers for a reporting period.`,
	RunE:  runSummary,
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List leads",
	Long:  `List sales leads, optionally filtered to one assignee or to leads awaiting a follow-up.`,
	RunE:  runLeads,
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	Long:  `List tasks, optionally filtered to one assignee.`,
	RunE:  runTasks,
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Show the employee count",
	RunE:  runEmployees,
}

var importCmd = &cobra.Command{
	Use:   "import [leads|tasks] [file]",
	Short: "Import records from a CSV file",
	Long:  `Bulk-load leads or tasks from a CSV file into the store. The first row must be a header.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runImport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")

	summaryCmd.Flags().StringVar(&period, "period", "weekly", "reporting period (daily, weekly, monthly)")
	summaryCmd.Flags().StringVar(&refDate, "date", "", "reference date (YYYY-MM-DD, default today)")

	leadsCmd.Flags().StringVar(&assignee, "assignee", "", "filter by assignee email")
	leadsCmd.Flags().BoolVar(&followUps, "follow-ups", false, "only leads awaiting a follow-up")
	tasksCmd.Flags().StringVar(&assignee, "assignee", "", "filter by assignee email")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "postgres":
		return postgres.NewPostgresStorage(cfg.PostgresURL)
	default:
		return sqlite.NewSQLiteStorage(cfg.SQLitePath)
	}
}

func getRefTime() time.Time {
	if refDate != "" {
		if t, err := time.Parse("2006-01-02", refDate); err == nil {
			return t
		}
	}
	return time.Now()
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	reporter := reporting.NewReporter(store)
	ctx := context.Background()
	ref := getRefTime()

	summary, err := reporter.Summarize(ctx, reporting.ParsePeriod(period), ref)
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(summary)
	}

	rng := reporting.ResolveRange(reporting.ParsePeriod(period), ref)
	fmt.Printf("\nDashboard Summary (%s)\n", rng.Period)
	fmt.Printf("Range: %s to %s\n\n", rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Target", fmt.Sprintf("%.2f", summary.TotalTarget)})
	table.Append([]string{"Total Achieved", fmt.Sprintf("%.2f", summary.TotalAchieved)})
	table.Append([]string{"Achievement", fmt.Sprintf("%.2f%%", summary.AchievementPercent)})
	table.Render()

	if len(summary.Series) > 0 {
		fmt.Println("\nSales Series")
		series := tablewriter.NewWriter(os.Stdout)
		series.SetHeader([]string{"Bucket", "Amount"})
		for _, p := range summary.Series {
			series.Append([]string{p.Label, fmt.Sprintf("%.2f", p.Amount)})
		}
		series.Render()
	}

	if len(summary.TopPerformers) > 0 {
		fmt.Println("\nTop Performers")
		performers := tablewriter.NewWriter(os.Stdout)
		performers.SetHeader([]string{"Name", "Completed Tasks"})
		for _, p := range summary.TopPerformers {
			performers.Append([]string{p.Name, fmt.Sprintf("%d", p.Achievement)})
		}
		performers.Render()
	}

	return nil
}

func runLeads(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	var leads []*domain.Lead
	switch {
	case followUps:
		leads, err = store.GetFollowUpLeads(ctx)
	case assignee != "":
		leads, err = store.GetLeadsByAssignee(ctx, assignee)
	default:
		leads, err = store.GetLeads(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get leads: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(leads)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Client", "Company", "Project", "Status", "Budget", "Assigned To"})
	for _, l := range leads {
		table.Append([]string{
			l.ClientName,
			l.ClientCompany,
			l.ProjectName,
			string(l.Status),
			fmt.Sprintf("%.2f", l.Budget),
			l.AssignedTo,
		})
	}
	table.Render()
	fmt.Printf("%d leads\n", len(leads))

	return nil
}

func runTasks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	var tasks []*domain.Task
	if assignee != "" {
		tasks, err = store.GetTasksByAssignee(ctx, assignee)
	} else {
		tasks, err = store.GetTasks(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(tasks)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Client", "Assignee", "Type", "Date", "Status"})
	for _, t := range tasks {
		table.Append([]string{
			t.Client,
			t.AssigneeEmail,
			t.Type,
			t.Date.Format("2006-01-02"),
			string(t.Status),
		})
	}
	table.Render()
	fmt.Printf("%d tasks\n", len(tasks))

	return nil
}

func runEmployees(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	count, err := store.CountEmployees(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}

	if outputJSON {
		fmt.Printf(`{"count":%d}`, count)
		fmt.Println()
		return nil
	}

	fmt.Printf("Employees: %d\n", count)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	kind := args[0]
	path := args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	imp := importer.NewImporter(store)
	ctx := context.Background()
	onProgress := func(row, total int) {
		fmt.Printf("\rProcessed %d rows", row)
	}

	fmt.Printf("Importing %s from %s\n", kind, path)

	var imported int
	switch kind {
	case "leads":
		imported, err = imp.ImportLeads(ctx, file, onProgress)
	case "tasks":
		imported, err = imp.ImportTasks(ctx, file, onProgress)
	default:
		return fmt.Errorf("unknown import kind %q (expected leads or tasks)", kind)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("\nImported %d %s\n", imported, kind)
	return nil
}
