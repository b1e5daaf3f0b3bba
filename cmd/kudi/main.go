package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"kudi/internal/amqp"
	"kudi/internal/budget"
	"kudi/internal/cli"
	"kudi/internal/config"
	"kudi/internal/core"
	"kudi/internal/ledger"
	applog "kudi/internal/log"
	"kudi/internal/services"
)

const usage = `Usage: kudi <command> [flags]

Commands:
  add      Add a single record
  import   Import records from a file of raw lines
  list     Print all records with totals
  remove   Remove a record by index
  report   Print per-category spending against budgets

Run 'kudi <command> -h' for command flags.`

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := cli.LoadAndValidateConfig(logger)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "add":
		err = runAdd(ctx, logger, cfg, os.Args[2:])
	case "import":
		err = runImport(ctx, logger, cfg, os.Args[2:])
	case "list":
		err = runList(ctx, logger, cfg, os.Args[2:])
	case "remove":
		err = runRemove(ctx, logger, cfg, os.Args[2:])
	case "report":
		err = runReport(ctx, logger, cfg, os.Args[2:])
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("Command failed", applog.FieldError, err)
		os.Exit(1)
	}
}

// newService wires a ledger session from config: store backend, optional
// AMQP publisher, hydrated ledger. The returned closer releases both.
func newService(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*services.LedgerService, func(), error) {
	result := cli.InitStore(logger, cfg)

	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Sync is optional for the CLI: keep working locally.
			logger.Warn("Record sync disabled, AMQP connection failed", applog.FieldError, err)
		}
	}

	svc := services.NewLedgerService(result.Store, amqpClient, logger)
	closer := func() {
		if err := svc.Close(); err != nil {
			logger.Warn("Failed to close service", applog.FieldError, err)
		}
		if err := result.Close(); err != nil {
			logger.Warn("Failed to close store", applog.FieldError, err)
		}
	}

	if err := svc.Load(ctx); err != nil {
		closer()
		return nil, nil, err
	}
	return svc, closer, nil
}

func runAdd(ctx context.Context, logger *applog.Logger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	date := fs.String("date", "", "record date (YYYY-MM-DD)")
	desc := fs.String("desc", "", "description")
	amount := fs.String("amount", "", "amount, currency symbols and thousands separators allowed")
	category := fs.String("category", "", "category name")
	kind := fs.String("kind", "", "record type: Income or Expense")
	fs.Parse(args)

	d, err := core.ParseDate(*date)
	if err != nil {
		return err
	}
	money, err := core.CleanAmount(*amount)
	if err != nil {
		return err
	}
	k, err := core.ParseKind(*kind)
	if err != nil {
		return err
	}
	record, err := core.NewRecord(d, *desc, money, *category, k)
	if err != nil {
		return err
	}

	svc, closer, err := newService(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closer()

	if err := svc.Append(ctx, record); err != nil {
		return err
	}
	if err := svc.Save(ctx); err != nil {
		return err
	}
	fmt.Printf("added: %s\n", record)
	return nil
}

func runImport(ctx context.Context, logger *applog.Logger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "file of raw transaction lines")
	fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("import requires -file")
	}

	svc, closer, err := newService(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closer()

	added, skipped, err := svc.ImportFile(ctx, *file)
	if err != nil {
		return err
	}
	if err := svc.Save(ctx); err != nil {
		return err
	}
	fmt.Printf("imported %d records, skipped %d lines\n", added, len(skipped))
	return nil
}

func runList(ctx context.Context, logger *applog.Logger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)

	svc, closer, err := newService(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closer()

	led := svc.Ledger()
	for i, r := range led.All() {
		fmt.Printf("%3d  %s\n", i, r)
	}
	fmt.Printf("\nincome:  %s\nexpense: %s\nbalance: %s\n",
		led.TotalIncome(), led.TotalExpense(), led.Balance())
	return nil
}

func runRemove(ctx context.Context, logger *applog.Logger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	index := fs.Int("index", -1, "index of the record to remove, as shown by list")
	fs.Parse(args)

	svc, closer, err := newService(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closer()

	removed, err := svc.RemoveAt(*index)
	if errors.Is(err, ledger.ErrIndexOutOfRange) {
		// A bad index is a warning, not a failure: nothing changed.
		fmt.Printf("no record at index %d, nothing removed\n", *index)
		return nil
	}
	if err != nil {
		return err
	}
	if err := svc.Save(ctx); err != nil {
		return err
	}
	fmt.Printf("removed: %s\n", removed)
	return nil
}

func runReport(ctx context.Context, logger *applog.Logger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var budgets budgetFlags
	fs.Var(&budgets, "budget", "category budget as Category=Limit, repeatable")
	fs.Parse(args)

	svc, closer, err := newService(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closer()

	tracker := budget.NewTracker()
	for _, b := range budgets {
		if err := tracker.SetLimit(b.Category, b.Amount); err != nil {
			return fmt.Errorf("budget for %q: %w", b.Category, err)
		}
	}

	for _, line := range svc.BudgetReport(tracker) {
		fmt.Printf("%-20s spent %-12s %s\n", line.Category, line.Spent, line.Status)
	}
	return nil
}

// budgetFlags collects repeated -budget Category=Limit flags.
type budgetFlags []budget.Limit

func (b *budgetFlags) String() string {
	parts := make([]string, len(*b))
	for i, l := range *b {
		parts[i] = fmt.Sprintf("%s=%s", l.Category, l.Amount)
	}
	return strings.Join(parts, ",")
}

func (b *budgetFlags) Set(value string) error {
	name, limit, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected Category=Limit, got %q", value)
	}
	amount, err := core.CleanAmount(limit)
	if err != nil {
		return fmt.Errorf("limit for %q: %w", name, err)
	}
	*b = append(*b, budget.Limit{Category: strings.TrimSpace(name), Amount: amount})
	return nil
}
