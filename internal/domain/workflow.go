package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/checkcodedoc/internal/adapter"
	"github.com/mouse-blink/checkcodedoc/internal/controller"
	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// cacheVersion is mixed into every cache key; bump it when scanner output
// changes for identical input.
const cacheVersion = "v1"

// ErrFindingsAboveThreshold is returned by Check when the findings reach the
// configured fail level.
var ErrFindingsAboveThreshold = errors.New("documentation findings above threshold")

// CheckArgs contains the arguments for a documentation check run.
type CheckArgs struct {
	Paths    []m.Path
	Filter   adapter.FileFilter
	Rules    m.Rules
	Threads  int
	Reporter m.ReporterKind
	Output   m.Path
	Verbose  bool
	FailOn   m.FailLevel
}

// ViewArgs contains the arguments for re-displaying a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow runs documentation checks and displays their reports.
type Workflow interface {
	Check(args CheckArgs) (m.Summary, error)
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	cache       adapter.CacheStore
	ui          controller.UI
	log         *zap.SugaredLogger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	cache adapter.CacheStore,
	ui controller.UI,
	log *zap.SugaredLogger,
) Workflow {
	if cache == nil {
		cache = adapter.NewNoopCacheStore()
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		cache:       cache,
		ui:          ui,
		log:         log,
	}
}

// Check scans every file under args.Paths, writes the rendered report to
// args.Output and displays the totals. Findings never fail the call unless
// they reach args.FailOn, in which case the summary is returned together with
// ErrFindingsAboveThreshold.
func (w *workflow) Check(args CheckArgs) (m.Summary, error) {
	files, missing, err := w.fsAdapter.Get(args.Paths, args.Filter)
	if err != nil {
		return m.Summary{}, fmt.Errorf("collect sources: %w", err)
	}

	for _, path := range missing {
		w.log.Warnw("Source file not found", "path", path)
	}

	w.log.Debugw("Collected sources", "files", len(files), "threads", args.Threads)

	if err := w.ui.Start(len(files)); err != nil {
		return m.Summary{}, fmt.Errorf("failed to start UI: %w", err)
	}

	reports, err := w.scanAll(files, args)

	w.ui.Close()

	if err != nil {
		return m.Summary{}, err
	}

	reports = WithFindings(reports)
	summary := Summarize(len(files)+len(missing), reports)

	w.ui.DisplaySummary(summary)

	if args.Verbose {
		if err := w.ui.DisplayReport(args.Reporter, reports); err != nil {
			return summary, fmt.Errorf("display report: %w", err)
		}
	}

	rendered, err := controller.NewReporter(args.Reporter).Render(reports)
	if err != nil {
		return summary, fmt.Errorf("render report: %w", err)
	}

	if err := w.reportStore.SaveReport(args.Output, rendered); err != nil {
		return summary, fmt.Errorf("save report: %w", err)
	}

	w.log.Infow("Report written", "path", args.Output, "reporter", args.Reporter)

	if Breaches(summary, args.FailOn) {
		return summary, fmt.Errorf("%w: %d errors, %d warnings", ErrFindingsAboveThreshold, summary.Errors, summary.Warnings)
	}

	return summary, nil
}

// View loads a saved JSON report and hands it to the UI.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.ui.Browse(WithFindings(reports))
}

// scanAll scans files on at most args.Threads goroutines. Reports keep the
// order of files.
func (w *workflow) scanAll(files []m.SourceFile, args CheckArgs) ([]m.FileReport, error) {
	scanner := NewScanner(args.Rules)
	fingerprint := rulesFingerprint(args.Rules)
	reports := make([]m.FileReport, len(files))

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	var g errgroup.Group

	g.SetLimit(threads)

	for i, file := range files {
		i, file := i, file

		g.Go(func() error {
			report, err := w.scanFile(scanner, fingerprint, file)
			if err != nil {
				return err
			}

			reports[i] = report
			w.ui.Advance(file.Path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (w *workflow) scanFile(scanner Scanner, fingerprint string, file m.SourceFile) (m.FileReport, error) {
	content, err := w.fsAdapter.ReadFile(file.Path)
	if err != nil {
		return m.FileReport{}, fmt.Errorf("read %s: %w", file.Path, err)
	}

	key := cacheKey(fingerprint, content)

	findings, hit, err := w.cache.Lookup(key)
	if err != nil {
		w.log.Warnw("Cache lookup failed", "path", file.Path, "error", err)
	}

	if hit && err == nil {
		w.log.Debugw("Cache hit", "path", file.Path)
		return m.FileReport{File: file.Path, Findings: findings}, nil
	}

	report := scanner.Scan(file.Path, content)

	if err := w.cache.Store(key, report.Findings); err != nil {
		w.log.Warnw("Cache store failed", "path", file.Path, "error", err)
	}

	w.log.Debugw("Scanned", "path", file.Path, "findings", len(report.Findings))

	return report, nil
}

// rulesFingerprint identifies the rule set so cached findings are reused only
// by runs with the same rules.
func rulesFingerprint(rules m.Rules) string {
	pattern := ""
	if rules.ParamDocPattern != nil {
		pattern = rules.ParamDocPattern.String()
	}

	return fmt.Sprintf("%s|%s|%t|%t", cacheVersion, pattern, rules.ShortDocWarnings, rules.EnforceStrictTypes)
}

func cacheKey(fingerprint string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(fingerprint))
	h.Write([]byte{0})
	h.Write(content)

	return hex.EncodeToString(h.Sum(nil))
}
