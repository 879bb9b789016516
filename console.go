package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"placesync/internal/api"
	"placesync/internal/models"
)

const (
	maxAccountRows = 5
	maxPostRows    = 3
	maxBodyChars   = 60
)

// runConsole mirrors both remote collections and prints the result as a
// console report: import accounts, import posts, then list what the store
// holds. Import failures end the run early, there is nothing to list.
func runConsole(ctx context.Context, app *api.API, logger *slog.Logger) {
	heading("importing accounts")
	accounts, err := app.ImportAccounts(ctx)
	if err != nil {
		color.Red.Printf("account import failed: %v\n", err)
		return
	}
	printReport(accounts)

	heading("importing posts")
	posts, err := app.ImportPosts(ctx)
	if err != nil {
		color.Red.Printf("post import failed: %v\n", err)
		return
	}
	printReport(posts)

	heading("persisted accounts")
	storedAccounts, err := app.ListAccounts(ctx)
	if err != nil {
		logger.Error("list accounts failed", "error", err)
		return
	}
	printAccounts(storedAccounts)

	heading("persisted posts")
	storedPosts, err := app.ListPosts(ctx)
	if err != nil {
		logger.Error("list posts failed", "error", err)
		return
	}
	printPosts(storedPosts)
}

func heading(title string) {
	fmt.Println()
	color.Bold.Println("== " + title)
}

func printReport(report models.ImportReport) {
	fmt.Printf("run %s: %d imported, %d skipped, %d rejected\n",
		report.RunID, report.Imported, report.Skipped, report.Rejected)
	for _, r := range report.Rejections {
		color.Yellow.Printf("  record %d rejected: %s\n", r.Index, r.Reason)
	}
}

func printAccounts(accounts []models.Account) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Email", "Created"})
	for i, a := range accounts {
		if i == maxAccountRows {
			break
		}
		table.Append([]string{
			strconv.FormatInt(a.ID, 10), a.Name, a.Email, a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	printRemainder(len(accounts), maxAccountRows, "account")
}

func printPosts(posts []models.Post) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Account", "Title", "Body"})
	for i, p := range posts {
		if i == maxPostRows {
			break
		}
		table.Append([]string{
			strconv.FormatInt(p.ID, 10), strconv.FormatInt(p.AccountID, 10), p.Title, truncate(p.Body, maxBodyChars),
		})
	}
	table.Render()
	printRemainder(len(posts), maxPostRows, "post")
}

func printRemainder(total, shown int, noun string) {
	if total > shown {
		fmt.Printf("... and %d more %s(s)\n", total-shown, noun)
	}
}

// truncate cuts by rune so multibyte bodies never render a broken sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
