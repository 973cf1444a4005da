// fixitctl is a command-line consumer of the Fix It API client: login,
// property and request management, report export, and notification
// watching.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/RaymondAkiiki/fixit-go/fixit"
	"github.com/RaymondAkiiki/fixit-go/internal/config"
	"github.com/RaymondAkiiki/fixit-go/internal/logging"
	"github.com/RaymondAkiiki/fixit-go/internal/version"
)

func main() {
	// version needs no configuration, so it runs before config is loaded.
	if len(os.Args) > 1 && os.Args[1] == "version" {
		info := version.Get()
		fmt.Printf("fixitctl %s (%s, built %s, %s)\n", info.Version, info.Commit, info.BuildTime, info.GoVersion)
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	opts := []fixit.Option{
		fixit.WithSessionStore(fixit.NewFileStore(cfg.CredentialsFile)),
		fixit.WithCircuitBreaker(),
	}
	if cfg.AdminToken != "" {
		opts = append(opts, fixit.WithAdminToken(cfg.AdminToken))
	}
	client, err := fixit.New(cfg.APIOrigin, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "client error:", err)
		os.Exit(1)
	}
	client.OnInvalidate(func() {
		fmt.Fprintln(os.Stderr, "session expired, run `fixitctl login` again")
	})

	// One-shot notice left behind by a forced logout in an earlier run.
	if client.SessionStore().TakeExpired() {
		fmt.Fprintln(os.Stderr, "note: your previous session expired")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	switch os.Args[1] {
	case "login":
		runErr = runLogin(ctx, client, os.Args[2:])
	case "logout":
		runErr = client.Auth.Logout(ctx)
	case "whoami":
		runErr = runWhoami(ctx, client)
	case "properties":
		runErr = runProperties(ctx, client, os.Args[2:])
	case "requests":
		runErr = runRequests(ctx, client, os.Args[2:])
	case "report":
		runErr = runReport(ctx, client, os.Args[2:])
	case "watch":
		runErr = runWatch(ctx, client, cfg.PollInterval)
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		if fixit.IsAborted(runErr) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: fixitctl <command> [flags]

commands:
  login       -email -password
  logout
  whoami
  properties  list [-search -city -page -limit]
  requests    create -title -category -property [-unit -priority -file ...]
  report      download -type -format [-property -out]
  watch       poll unread notification count
  version     print build information`)
}

func runLogin(ctx context.Context, client *fixit.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	profile, err := client.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", profile.Name, profile.Role)
	return nil
}

func runWhoami(ctx context.Context, client *fixit.Client) error {
	user, err := client.Users.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}

func runProperties(ctx context.Context, client *fixit.Client, args []string) error {
	if len(args) < 1 || args[0] != "list" {
		return fmt.Errorf("usage: fixitctl properties list [flags]")
	}
	fs := flag.NewFlagSet("properties list", flag.ExitOnError)
	search := fs.String("search", "", "search term")
	city := fs.String("city", "", "filter by city")
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	_ = fs.Parse(args[1:])

	result, err := client.Properties.List(ctx, &fixit.PropertyListOptions{
		Search: *search, City: *city, Page: *page, PerPage: *limit,
	})
	if err != nil {
		return err
	}
	for _, p := range result.Items {
		fmt.Printf("%s  %-24s %s, %s (%d units)\n", p.ID, p.Name, p.Address, p.City, p.UnitCount)
	}
	fmt.Printf("total %d (page %d)\n", result.Total, result.Page)
	return nil
}

// fileList collects repeatable -file flags.
type fileList []string

func (f *fileList) String() string     { return fmt.Sprint(*f) }
func (f *fileList) Set(v string) error { *f = append(*f, v); return nil }

func runRequests(ctx context.Context, client *fixit.Client, args []string) error {
	if len(args) < 1 || args[0] != "create" {
		return fmt.Errorf("usage: fixitctl requests create [flags]")
	}
	fs := flag.NewFlagSet("requests create", flag.ExitOnError)
	title := fs.String("title", "", "request title")
	category := fs.String("category", "", "category (plumbing, electrical, ...)")
	priority := fs.String("priority", "", "priority (low, medium, high)")
	property := fs.String("property", "", "property id")
	unit := fs.String("unit", "", "unit id")
	var files fileList
	fs.Var(&files, "file", "attachment path (repeatable)")
	_ = fs.Parse(args[1:])

	if *title == "" || *category == "" || *property == "" {
		return fmt.Errorf("-title, -category and -property are required")
	}
	propertyID, err := uuid.Parse(*property)
	if err != nil {
		return fmt.Errorf("invalid -property: %w", err)
	}
	params := fixit.RequestParams{
		Title:      *title,
		Category:   *category,
		Priority:   *priority,
		PropertyID: propertyID,
	}
	if *unit != "" {
		unitID, err := uuid.Parse(*unit)
		if err != nil {
			return fmt.Errorf("invalid -unit: %w", err)
		}
		params.UnitID = unitID
	}

	var uploads []fixit.Upload
	var closers []*os.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open attachment: %w", err)
		}
		closers = append(closers, f)
		uploads = append(uploads, fixit.Upload{Name: filepath.Base(path), Content: f})
	}

	req, err := client.Requests.Create(ctx, params, uploads)
	if err != nil {
		return err
	}
	fmt.Printf("created request %s (%s/%s)\n", req.ID, req.Category, req.Status)
	return nil
}

func runReport(ctx context.Context, client *fixit.Client, args []string) error {
	if len(args) < 1 || args[0] != "download" {
		return fmt.Errorf("usage: fixitctl report download [flags]")
	}
	fs := flag.NewFlagSet("report download", flag.ExitOnError)
	reportType := fs.String("type", "rent", "report type (rent, requests, leases)")
	format := fs.String("format", "csv", "export format (csv, pdf)")
	property := fs.String("property", "", "property id")
	out := fs.String("out", "", "output file (defaults to the backend's filename)")
	_ = fs.Parse(args[1:])

	opts := fixit.ReportDownloadOptions{Type: *reportType, Format: *format}
	if *property != "" {
		propertyID, err := uuid.Parse(*property)
		if err != nil {
			return fmt.Errorf("invalid -property: %w", err)
		}
		opts.PropertyID = propertyID
	}

	tmp, err := os.CreateTemp("", "fixit-report-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	info, err := client.Reports.Download(ctx, opts, tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flush download: %w", err)
	}

	target := *out
	if target == "" {
		target = info.Filename
	}
	if target == "" {
		target = *reportType + "-report." + *format
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("move download: %w", err)
	}
	fmt.Printf("wrote %s (%s)\n", target, humanize.Bytes(uint64(info.Size)))
	return nil
}

func runWatch(ctx context.Context, client *fixit.Client, interval string) error {
	every, err := time.ParseDuration(interval)
	if err != nil {
		return fmt.Errorf("invalid FIXIT_POLL_INTERVAL: %w", err)
	}
	fmt.Println("watching unread notifications every " + every.String() + " (ctrl-c to stop)")
	poller := client.NewUnreadPoller(every, func(count int) {
		fmt.Println(time.Now().Format(time.TimeOnly) + "  unread: " + strconv.Itoa(count))
	})
	err = poller.Run(ctx)
	if err == context.Canceled || fixit.IsAborted(err) {
		return nil
	}
	return err
}
