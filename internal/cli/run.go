package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/diploma/internal/config"
	"github.com/aretw0/diploma/internal/logging"
	"github.com/aretw0/diploma/internal/metrics"
	"github.com/aretw0/diploma/internal/presentation/tui"
	"github.com/aretw0/diploma/pkg/adapters/file"
	"github.com/aretw0/diploma/pkg/adapters/memory"
	"github.com/aretw0/diploma/pkg/domain"
	"github.com/aretw0/diploma/pkg/persistence/middleware"
	"github.com/aretw0/diploma/pkg/ports"
	"github.com/aretw0/diploma/pkg/session"
)

const (
	defaultStudentName = "Anonymous Student"

	// Random seeds are drawn from [-seedRange, seedRange].
	seedRange = 10000
)

// RunOptions configures an interactive run.
type RunOptions struct {
	Slot        int
	New         bool   // Start over even if the slot has a save
	Seed        *int64 // nil draws a random seed
	ConfigPath  string
	SavesDir    string // Overrides the config's saves_dir
	Debug       bool
	MetricsFile string
	Ephemeral   bool // Keep saves in memory only
	NoBanner    bool

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run plays one session in the given slot until the player exits, the input
// ends, ctx is cancelled or the process finishes. The session is saved in
// every one of those cases.
func Run(ctx context.Context, opts RunOptions) error {
	opts.defaults()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	logger := createLogger(opts.Err, opts.Debug)
	recorder := metrics.NewRecorder()
	hooks := recorder.Hooks()
	if opts.Debug {
		hooks = domain.MergeHooks(createDebugHooks(logger), hooks)
	}

	store := openStore(opts, cfg)
	if opts.Debug {
		store = middleware.Chain(store, middleware.NewLoggingMiddleware(logger))
	}

	svc := session.NewService(store,
		session.WithCatalog(catalog),
		session.WithLifecycleHooks(hooks),
		session.WithLogger(logger))

	tty := isTerminal(opts.Out)
	profile := termenv.Ascii
	if tty {
		profile = termenv.EnvColorProfile()
	}
	if tty && !opts.NoBanner {
		tui.PrintBanner(opts.Out, profile)
	}

	in := newLineReader(opts.In)
	defer in.Close()
	p := &prompter{in: in, out: opts.Out}

	if err := openSession(ctx, svc, p, opts); err != nil {
		if isInterrupted(err) {
			return nil
		}
		return err
	}

	runErr := play(ctx, svc, p, tui.NewStatusView(profile), opts.Out, tty)

	if status, err := svc.Status(); err == nil {
		recorder.ObserveStatus(status)
	}
	if opts.MetricsFile != "" {
		if err := recorder.WriteTextfile(opts.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics", "path", opts.MetricsFile, "err", err)
		}
	}

	return runErr
}

// openSession loads the slot or asks for a new student.
func openSession(ctx context.Context, svc *session.Service, p *prompter, opts RunOptions) error {
	exists, err := svc.HasSave(ctx, opts.Slot)
	if err != nil {
		return err
	}

	if exists && !opts.New {
		if _, err := svc.Load(ctx, opts.Slot); err != nil {
			return fmt.Errorf("%w (use --new to start over)", err)
		}
		fmt.Fprintf(p.out, "Loaded existing session from slot %d.\n", opts.Slot)
		return nil
	}

	fmt.Fprintf(p.out, "Starting new session in slot %d.\n", opts.Slot)
	name, err := p.askName(ctx)
	if err != nil {
		return err
	}
	intelligence, err := p.askIntelligence(ctx)
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == nil {
		s := rand.Int64N(2*seedRange+1) - seedRange
		seed = &s
	}
	_, err = svc.StartNew(ctx, opts.Slot, name, intelligence, seed)
	return err
}

func play(ctx context.Context, svc *session.Service, p *prompter, view *tui.StatusView, out io.Writer, tty bool) error {
	for {
		status, err := svc.Status()
		if err != nil {
			return err
		}
		finished, err := svc.IsFinished()
		if err != nil {
			return err
		}
		if finished {
			fmt.Fprintln(out, "\nSession is finished.")
			return printReport(out, status, tty)
		}

		actions, err := svc.AvailableActions()
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprint(out, view.Render(status))
		fmt.Fprint(out, view.RenderMenu(actions))

		choice, err := p.askChoice(ctx, len(actions))
		if err != nil {
			if !isInterrupted(err) {
				return err
			}
			choice = 0
		}
		if choice == 0 {
			if err := svc.Save(context.WithoutCancel(ctx)); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nSession saved to slot %d.\n", svc.Slot())
			return nil
		}

		if err := svc.Perform(ctx, actions[choice-1]); err != nil {
			if errors.Is(err, domain.ErrActionNotAvailable) {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			return err
		}
	}
}

func printReport(out io.Writer, status domain.Status, tty bool) error {
	style := tui.NoTTYStyle
	if tty {
		style = ""
	}
	rendered, err := tui.NewRenderer(style)(tui.ReportMarkdown(status))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(out, rendered)
	return nil
}

// ResolveSavesDir returns the saves directory: the flag if set, the config
// file's saves_dir otherwise.
func ResolveSavesDir(configPath, savesDir string) (string, error) {
	if savesDir != "" {
		return savesDir, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", err
	}
	return cfg.SavesDir, nil
}

func openStore(opts RunOptions, cfg config.Config) ports.SaveStore {
	if opts.Ephemeral {
		return memory.NewStore()
	}
	dir := cfg.SavesDir
	if opts.SavesDir != "" {
		dir = opts.SavesDir
	}
	return file.New(dir)
}

// createLogger configures the application logger.
// Outside debug mode nothing is logged so the menu stays readable.
func createLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return logging.NewNop()
	}
	return logging.NewWithWriter(w, logging.Level(debug)).With("run_id", uuid.NewString())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isInterrupted reports whether err means the player went away: the context
// was cancelled or the input ended.
func isInterrupted(err error) bool {
	return errors.Is(err, errInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF)
}
