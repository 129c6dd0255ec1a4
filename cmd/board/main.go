// Package main provides the board CLI: a terminal schedule viewer with
// match management commands. It talks to the HTTP API by default and
// falls back to a local file store with -offline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/jonboulle/clockwork"

	authModel "github.com/ashevelyov/matchboard/internal/auth/model"
	"github.com/ashevelyov/matchboard/internal/board"
	"github.com/ashevelyov/matchboard/internal/localstore"
	"github.com/ashevelyov/matchboard/internal/match/lifecycle"
	"github.com/ashevelyov/matchboard/internal/match/model"
	"github.com/ashevelyov/matchboard/internal/match/schedule"
	"github.com/ashevelyov/matchboard/internal/session"
	"github.com/ashevelyov/matchboard/internal/client"
)

// matchSource is the storage-neutral surface the board needs. Both the
// HTTP client and the offline file store satisfy it.
type matchSource interface {
	ListMatches(ctx context.Context) ([]model.Match, error)
	GetMatch(ctx context.Context, id string) (*model.Match, error)
	CreateMatch(ctx context.Context, req *model.UpsertMatchRequest) (*model.Match, error)
	UpdateMatch(ctx context.Context, id string, req *model.UpsertMatchRequest) (*model.Match, error)
	DeleteMatch(ctx context.Context, id string) error
	SetLive(ctx context.Context, id string) (*model.Match, error)
}

var (
	_ matchSource = (*client.Client)(nil)
	_ matchSource = (*localstore.Store)(nil)
)

type app struct {
	source  matchSource
	session *session.Store
	api     *client.Client // nil in offline mode
	day     int
}

func main() {
	apiURL := flag.String("api", envOr("MATCHBOARD_API", "http://localhost:8080"), "API base URL")
	offline := flag.Bool("offline", false, "use the local file store instead of the API")
	dataDir := flag.String("data", defaultDataDir(), "directory for session and offline data")
	day := flag.Int("day", 0, "day offset within the 7-day window (0 = today)")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		fatalf("cannot create data dir: %v", err)
	}
	kv := localstore.OpenKV(filepath.Join(*dataDir, "board.json"))
	sess := session.New(kv)

	a := &app{session: sess, day: *day}
	if *offline {
		a.source = localstore.NewStore(kv)
	} else {
		a.api = client.New(*apiURL, sess)
		a.source = a.api
	}

	args := flag.Args()
	cmd := "schedule"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	ctx := context.Background()
	var err error
	switch cmd {
	case "schedule":
		err = a.printSchedule(ctx)
	case "watch":
		err = a.watch(ctx)
	case "matches":
		err = a.printMatches(ctx)
	case "add":
		err = a.addMatch(ctx, args)
	case "delete":
		err = a.deleteMatch(ctx, args)
	case "live":
		err = a.setLive(ctx, args)
	case "login":
		err = a.login(ctx, args)
	case "register":
		err = a.register(ctx, args)
	case "logout":
		err = sess.Logout()
	case "whoami":
		err = a.whoami(ctx)
	default:
		fatalf("unknown command %q", cmd)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

func (a *app) filtered(ctx context.Context, now time.Time) ([]model.Match, schedule.Window, error) {
	window := schedule.NewWindow(now)
	if !window.ValidDay(a.day) {
		return nil, window, fmt.Errorf("day must be between 0 and 6, got %d", a.day)
	}
	matches, err := a.source.ListMatches(ctx)
	if err != nil {
		return nil, window, err
	}
	picked := window.Filter(matches, a.day)
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].Date != picked[j].Date {
			return picked[i].Date < picked[j].Date
		}
		return picked[i].StartTime < picked[j].StartTime
	})
	return picked, window, nil
}

func (a *app) printSchedule(ctx context.Context) error {
	now := time.Now()
	matches, window, err := a.filtered(ctx, now)
	if err != nil {
		return err
	}

	fmt.Printf("Schedule for %s\n\n", window.Day(a.day).Format("2006-01-02"))
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATCH\tTIME\tSTATE\tCOUNTDOWN")
	for _, m := range matches {
		start, err := m.StartInstant()
		if err != nil {
			continue
		}
		snap := lifecycle.Resolve(m.Status, start, now)
		fmt.Fprintf(w, "%s\t%s vs %s\t%s\t%s\t%s\n",
			m.ID, m.HomeTeam.Name, m.AwayTeam.Name, m.StartTime, snap.State, snap.Label)
	}
	return w.Flush()
}

// watch renders the day's matches and keeps their countdowns live, one
// ticker per match, until interrupted.
func (a *app) watch(ctx context.Context) error {
	matches, _, err := a.filtered(ctx, time.Now())
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}

	clock := clockwork.NewRealClock()
	tickers := make([]*board.Ticker, 0, len(matches))
	for _, m := range matches {
		m := m
		tickers = append(tickers, board.NewTicker(clock, m, func(snap lifecycle.Snapshot, progress int) {
			fmt.Printf("%s vs %s  %-9s  %-8s  %3d%%\n",
				m.HomeTeam.Name, m.AwayTeam.Name, snap.State, snap.Label, progress)
		}))
	}
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	return nil
}

func (a *app) printMatches(ctx context.Context) error {
	matches, err := a.source.ListMatches(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tMATCH\tSTATUS")
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s vs %s\t%s\n",
			m.ID, m.Date, m.StartTime, m.HomeTeam.Name, m.AwayTeam.Name, m.Status)
	}
	return w.Flush()
}

// addMatch expects: add <home> <away> <date> <time> [venue]
func (a *app) addMatch(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: add <home> <away> <YYYY-MM-DD> <HH:MM> [venue]")
	}
	req := &model.UpsertMatchRequest{
		HomeTeam:  model.Team{Name: args[0]},
		AwayTeam:  model.Team{Name: args[1]},
		Date:      args[2],
		StartTime: args[3],
	}
	if len(args) > 4 {
		req.Venue = strings.Join(args[4:], " ")
	}
	m, err := a.source.CreateMatch(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("created %s\n", m.ID)
	return nil
}

func (a *app) deleteMatch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <id>")
	}
	return a.source.DeleteMatch(ctx, args[0])
}

func (a *app) setLive(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: live <id>")
	}
	m, err := a.source.SetLive(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s vs %s is live\n", m.HomeTeam.Name, m.AwayTeam.Name)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if a.api == nil {
		return fmt.Errorf("login requires the API; drop -offline")
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	resp, err := a.api.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.User.Email, resp.User.Role)
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	if a.api == nil {
		return fmt.Errorf("register requires the API; drop -offline")
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: register <email> <password>")
	}
	user, err := a.api.Register(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("registered %s\n", user.Email)
	return nil
}

// whoami prefers the server's view of the account; offline it falls back
// to the session snapshot.
func (a *app) whoami(ctx context.Context) error {
	if a.session.Token() == "" {
		fmt.Println("not logged in")
		return nil
	}
	if a.api != nil {
		user, err := a.api.Me(ctx)
		if err != nil {
			return err
		}
		printUser(*user)
		return nil
	}
	user := a.session.User()
	if user == nil {
		fmt.Println("not logged in")
		return nil
	}
	printUser(*user)
	return nil
}

func printUser(u authModel.PublicUser) {
	fmt.Printf("%s (%s)\n", u.Email, u.Role)
}

func defaultDataDir() string {
	if dir := os.Getenv("MATCHBOARD_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".matchboard"
	}
	return filepath.Join(home, ".matchboard")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
