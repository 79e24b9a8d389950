package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/odvcencio/buckle/pkg/config"
	"github.com/odvcencio/buckle/pkg/logging"
	"github.com/odvcencio/buckle/pkg/ui/compositor"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/theme"
)

type snapshotOptions struct {
	width, height int
	lines         int
	scroll        int
	color         string
	logger        *logging.Logger
}

func runSnapshotCommand(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	var opts snapshotOptions
	fs.IntVar(&opts.width, "width", 0, "frame width (defaults to the terminal width, or 80)")
	fs.IntVar(&opts.height, "height", 0, "frame height (defaults to the terminal height, or 24)")
	fs.IntVar(&opts.lines, "lines", 200, "number of rows in the scrolling list")
	fs.IntVar(&opts.scroll, "scroll", 0, "initial scroll position of the list")
	fs.StringVar(&opts.color, "color", "auto", "styled output: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return withExitCode(err, exitUsage)
	}
	switch opts.color {
	case "auto", "always", "never":
	default:
		return withExitCode(fmt.Errorf("invalid -color %q (use auto, always or never)", opts.color), exitUsage)
	}

	cfg, th, err := common.load()
	if err != nil {
		return err
	}
	fd := int(os.Stdout.Fd())
	tty := term.IsTerminal(fd)
	if opts.width <= 0 || opts.height <= 0 {
		w, h := 80, 24
		if tty {
			if tw, thgt, err := term.GetSize(fd); err == nil {
				w, h = tw, thgt
			}
		}
		if opts.width <= 0 {
			opts.width = w
		}
		if opts.height <= 0 {
			opts.height = h
		}
	}
	if opts.color == "auto" && !tty {
		opts.color = "never"
	}

	logger, err := openLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer logger.Close()
	opts.logger = logger

	return writeSnapshot(context.Background(), os.Stdout, cfg, th, opts)
}

// renderDemo renders the demo once into a frame of the given size.
func renderDemo(cfg *config.Config, th *theme.Theme, opts snapshotOptions) *runtime.Buffer {
	d := newDemo(cfg, th, opts.lines)
	d.scrollTo(opts.scroll)
	frame := runtime.NewBuffer(runtime.Dims(opts.width, opts.height))
	runtime.RenderRoot(d.build(), frame)
	return frame
}

// writeSnapshot writes one demo frame to out. Styled output goes through
// the committer onto an ANSI target so it exercises the same path as a
// live terminal; plain output is the frame's text.
func writeSnapshot(ctx context.Context, out io.Writer, cfg *config.Config, th *theme.Theme, opts snapshotOptions) error {
	if opts.width <= 0 || opts.height <= 0 {
		return stderrors.New("snapshot needs a positive width and height")
	}
	frame := renderDemo(cfg, th, opts)
	if opts.color == "never" {
		_, err := fmt.Fprintln(out, frame.String())
		return err
	}

	profile := compositor.DetectProfile(out)
	if profile == termenv.Ascii && opts.color == "always" {
		profile = termenv.TrueColor
	}
	target := compositor.NewANSITarget(out, opts.width, opts.height, profile)
	c := compositor.New(target, compositor.WithLogger(opts.logger))
	c.Reset(frame.Dimensions())
	if _, err := c.Commit(ctx, frame); err != nil {
		return err
	}
	_, err := fmt.Fprint(out, compositor.CursorTo(0, opts.height)+"\n")
	return err
}
