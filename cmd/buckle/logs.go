package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/odvcencio/buckle/pkg/config"
	"github.com/odvcencio/buckle/pkg/logging"
)

func runLogsCommand(args []string) error {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (defaults to ~/.buckle and ./.buckle layering)")
	dir := fs.String("dir", "", "log directory (overrides logging.dir)")
	session := fs.String("session", "", "session ID (defaults to the newest session)")
	count := fs.Int("n", 20, "number of events to show")
	if err := fs.Parse(args); err != nil {
		return withExitCode(err, exitUsage)
	}

	logDir := *dir
	if logDir == "" {
		var (
			cfg *config.Config
			err error
		)
		if *configPath != "" {
			cfg, err = config.LoadFromPath(*configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return withExitCode(err, exitConfig)
		}
		logDir = cfg.Logging.Dir
	}
	if logDir == "" {
		return withExitCode(stderrors.New("no log directory: set logging.dir or pass -dir"), exitUsage)
	}
	return printSessionEvents(os.Stdout, logDir, *session, *count)
}

// newestSession returns the newest session ID in dir. Session IDs are
// ULIDs, so lexical order is creation order.
func newestSession(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "sessions", "*.jsonl"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no sessions in %s", dir)
	}
	sort.Strings(matches)
	return strings.TrimSuffix(filepath.Base(matches[len(matches)-1]), ".jsonl"), nil
}

func printSessionEvents(w io.Writer, dir, session string, count int) error {
	if session == "" {
		var err error
		if session, err = newestSession(dir); err != nil {
			return err
		}
	}
	events, err := logging.ReadRecentEvents(filepath.Join(dir, "sessions", session+".jsonl"), max(1, count))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "session %s (%d events)\n", session, len(events))
	for _, ev := range events {
		fmt.Fprintf(w, "%s %-5s %-7s %-16s %s", ev.Timestamp.Format("15:04:05.000"), ev.Level, ev.Category, ev.EventType, ev.Message)
		if len(ev.Details) > 0 {
			keys := make([]string, 0, len(ev.Details))
			for k := range ev.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, " %s=%v", k, ev.Details[k])
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
