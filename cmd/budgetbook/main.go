package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"budgetbook/internal/config"
	"budgetbook/internal/database"
	"budgetbook/internal/logger"
	"budgetbook/internal/models"
	"budgetbook/internal/pagination"
	"budgetbook/internal/services"
	"budgetbook/internal/validator"
)

func main() {
	logger.Init(config.Get().Env)
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

// app bundles the service surface the commands call into. Any frontend
// (graphical, command-line, or test harness) drives the same contracts.
type app struct {
	users    services.UserServicer
	budgets  services.BudgetServicer
	expenses services.ExpenseServicer
	reports  services.ReportServicer
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	logger.Get().Infof("Using store at %s", config.Get().DBPath)

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	manager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := manager.Close(); err != nil {
			logger.Get().Warnf("store close error: %v", err)
		}
	}()

	if err := manager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}

	db := manager.DB()
	a := &app{
		users:    services.NewUserService(db),
		budgets:  services.NewBudgetService(db),
		expenses: services.NewExpenseService(db),
		reports:  services.NewReportService(db),
	}

	switch args[0] {
	case "add-user":
		return a.addUser(args[1:])
	case "list-users":
		return a.listUsers()
	case "update-user":
		return a.updateUser(args[1:])
	case "remove-user":
		return a.removeUser(args[1:])
	case "add-expense":
		return a.addExpense(args[1:])
	case "list-expenses":
		return a.listExpenses(args[1:])
	case "report":
		return a.report(args[1:])
	case "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type addUserRequest struct {
	Name          string `validate:"required"`
	MonthlyIncome int64  `validate:"min=0"`
}

func (a *app) addUser(args []string) error {
	fs := flag.NewFlagSet("add-user", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	income := fs.Int64("income", 0, "monthly income in minor units")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := addUserRequest{Name: *name, MonthlyIncome: *income}
	if err := validator.Struct(req); err != nil {
		return err
	}

	user, err := a.users.CreateUser(req.Name, req.MonthlyIncome)
	if err != nil {
		return err
	}
	fmt.Printf("Added user %q (id %d) with monthly income %d\n", user.Name, user.ID, user.MonthlyIncome)
	return nil
}

func (a *app) listUsers() error {
	users, err := a.users.ListUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No users yet.")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%4d  %-24s income %d\n", u.ID, u.Name, u.MonthlyIncome)
	}
	return nil
}

func (a *app) updateUser(args []string) error {
	fs := flag.NewFlagSet("update-user", flag.ExitOnError)
	id := fs.Uint("id", 0, "user id")
	name := fs.String("name", "", "new display name")
	income := fs.Int64("income", 0, "new monthly income in minor units")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var namePtr *string
	var incomePtr *int64
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			namePtr = name
		case "income":
			incomePtr = income
		}
	})

	user, err := a.users.UpdateUser(*id, namePtr, incomePtr)
	if err != nil {
		return err
	}
	fmt.Printf("Updated user %d: %q, income %d\n", user.ID, user.Name, user.MonthlyIncome)
	return nil
}

func (a *app) removeUser(args []string) error {
	fs := flag.NewFlagSet("remove-user", flag.ExitOnError)
	id := fs.Uint("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.users.DeleteUser(*id); err != nil {
		return err
	}
	fmt.Printf("Removed user %d and all their budget periods and expenses\n", *id)
	return nil
}

type addExpenseRequest struct {
	UserID   uint   `validate:"required"`
	Category string `validate:"required,expense_category"`
	Amount   int64  `validate:"required,gt=0"`
}

func (a *app) addExpense(args []string) error {
	fs := flag.NewFlagSet("add-expense", flag.ExitOnError)
	userID := fs.Uint("user", 0, "user id")
	category := fs.String("category", "Other", "expense category")
	amount := fs.Int64("amount", 0, "amount in minor units")
	dateStr := fs.String("date", "", "date as YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := addExpenseRequest{UserID: *userID, Category: *category, Amount: *amount}
	if err := validator.Struct(req); err != nil {
		return err
	}

	var date time.Time
	if *dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", *dateStr, err)
		}
	}

	expense, err := a.expenses.RecordExpense(req.UserID, req.Category, req.Amount, date)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded expense of %d in %s on %s\n",
		expense.Amount, expense.Category, expense.Date.Format("2006-01-02"))
	return nil
}

func (a *app) listExpenses(args []string) error {
	fs := flag.NewFlagSet("list-expenses", flag.ExitOnError)
	periodID := fs.Uint("period", 0, "budget period id")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.expenses.PeriodExpenses(*periodID, pagination.PageRequest{Page: *page})
	if err != nil {
		return err
	}
	for _, e := range result.Data {
		fmt.Printf("%s  %-24s %8d\n", e.Date.Format("2006-01-02"), e.Category, e.Amount)
	}
	fmt.Printf("Page %d of %d (%d expenses)\n", result.Page, result.TotalPages, result.TotalItems)
	return nil
}

type monthlyReportRequest struct {
	Month string `validate:"required,month_name"`
	Year  int    `validate:"required"`
}

func (a *app) report(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("report mode required: daily, monthly or yearly")
	}
	mode := args[0]
	now := time.Now()

	switch mode {
	case "daily":
		fs := flag.NewFlagSet("report daily", flag.ExitOnError)
		dateStr := fs.String("date", now.Format("2006-01-02"), "date as YYYY-MM-DD")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		date, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", *dateStr, err)
		}
		byUser, err := a.reports.DailyExpenses(date)
		if err != nil {
			return err
		}
		fmt.Printf("Expenses on %s\n", *dateStr)
		printByUser(byUser)
		return nil

	case "monthly":
		fs := flag.NewFlagSet("report monthly", flag.ExitOnError)
		month := fs.String("month", models.MonthOf(now), "month name, e.g. March")
		year := fs.Int("year", now.Year(), "calendar year")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		req := monthlyReportRequest{Month: *month, Year: *year}
		if err := validator.Struct(req); err != nil {
			return err
		}
		report, err := a.reports.MonthlyExpenses(req.Month, req.Year)
		if err != nil {
			return err
		}
		fmt.Printf("Expenses for %s %d\n", req.Month, req.Year)
		printByUser(report.ByUser)
		fmt.Printf("Total income:   %d\nTotal expenses: %d\n", report.TotalIncome, report.TotalExpenses)
		return nil

	case "yearly":
		fs := flag.NewFlagSet("report yearly", flag.ExitOnError)
		year := fs.Int("year", now.Year(), "calendar year")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		byMonth, err := a.reports.YearlyExpenses(*year)
		if err != nil {
			return err
		}
		fmt.Printf("Expenses for %d\n", *year)
		for _, month := range models.Months() {
			fmt.Printf("%s:\n", month)
			users := byMonth[month]
			if len(users) == 0 {
				fmt.Println("  (none)")
				continue
			}
			for user, total := range users {
				fmt.Printf("  %-24s %8d\n", user, total)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown report mode %q", mode)
	}
}

func printByUser(byUser map[string]map[string]int64) {
	if len(byUser) == 0 {
		fmt.Println("  (none)")
		return
	}
	for user, categories := range byUser {
		fmt.Printf("%s:\n", user)
		for category, total := range categories {
			fmt.Printf("  %-24s %8d\n", category, total)
		}
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `budgetbook — record expenses against monthly budgets

Commands:
  add-user      -name NAME -income N
  list-users
  update-user   -id ID [-name NAME] [-income N]
  remove-user   -id ID
  add-expense   -user ID -category CAT -amount N [-date YYYY-MM-DD]
  list-expenses -period ID [-page N]
  report        daily   [-date YYYY-MM-DD]
  report        monthly [-month NAME] [-year N]
  report        yearly  [-year N]`)
}
