// Package populate implements the offline cache bootstrap: it flattens the
// selected asset groups into fetch jobs, deduplicates them by URL, and
// downloads each into the flat cache directory the resolver reads from.
//
// Individual fetch failures never abort a run; they are recorded per URL
// and surfaced in the aggregate Summary so the caller can decide the
// process exit code.
package populate

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vk/mapvendor/internal/asset"
	"github.com/vk/mapvendor/internal/ctxlog"
	"github.com/vk/mapvendor/internal/fsutil"
)

// Status classifies the outcome of one fetch job.
type Status string

const (
	StatusDownloaded Status = "downloaded"
	StatusSkipped    Status = "skipped"
	StatusFailed     Status = "failed"
)

// Job is one unit of pending fetch work: a remote URL tagged with the group
// and asset names it was collected from, plus the cache filename it will be
// stored under.
type Job struct {
	Owner    string // owning group name, for reporting
	Name     string // asset name within the group
	URL      string
	Filename string // basename of the URL path, query stripped
}

// Result is the recorded outcome of one job.
type Result struct {
	Job    Job
	Status Status
	Bytes  int64 // body size for downloaded jobs
	Err    error // set when Status is StatusFailed
}

// Summary aggregates a whole run. The run as a whole failed iff Failed > 0;
// skips and successes alone signal success.
type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
	FailedURLs []string
	Results    []Result // in collection order
}

// OK reports whether every job either downloaded or was skipped.
func (s *Summary) OK() bool {
	return s.Failed == 0
}

// Options tunes a Populator.
type Options struct {
	Force     bool          // overwrite files that already exist
	Workers   int           // bounded fetch concurrency; <=0 means default
	Timeout   time.Duration // per-request bound; <=0 means default
	UserAgent string        // identifying client header
}

const (
	defaultWorkers   = 4
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "mapvendor/0.1"
)

// Populator fills a cache directory from asset groups. Re-running it is
// idempotent unless Force is set.
type Populator struct {
	cacheDir string
	opts     Options
	fetcher  *fetcher
}

// New creates a Populator writing into cacheDir.
func New(cacheDir string, opts Options) *Populator {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &Populator{
		cacheDir: cacheDir,
		opts:     opts,
		fetcher:  newFetcher(opts.Timeout, opts.UserAgent),
	}
}

// Collect flattens the groups into the deduplicated fetch list, scripts
// before styles within each group, groups in the given order. Only remote
// locators are kept. The dedup key is the full URL and the first occurrence
// wins for reporting purposes.
//
// The cache file is keyed by basename only, so two distinct URLs sharing a
// basename both stay in the list and the later one overwrites the earlier
// file. That is a known quirk of the on-disk contract; it is logged here but
// deliberately not treated as an error.
func Collect(ctx context.Context, groups []asset.Group) []Job {
	logger := ctxlog.FromContext(ctx)

	seenURL := make(map[string]struct{})
	fileOwner := make(map[string]string) // basename -> first URL using it

	var jobs []Job
	for _, g := range groups {
		for _, ref := range g.Assets() {
			if !ref.Remote() {
				continue
			}
			if _, dup := seenURL[ref.URL]; dup {
				continue
			}
			seenURL[ref.URL] = struct{}{}

			name := asset.CacheName(ref.URL)
			if prev, clash := fileOwner[name]; clash && name != "" {
				logger.Warn("Distinct URLs share a cache filename; the later download overwrites the earlier one.",
					"filename", name, "first_url", prev, "second_url", ref.URL)
			} else if name != "" {
				fileOwner[name] = ref.URL
			}

			jobs = append(jobs, Job{
				Owner:    g.Name,
				Name:     ref.Name,
				URL:      ref.URL,
				Filename: name,
			})
		}
	}
	return jobs
}

// Run collects, deduplicates, and fetches every remote asset of the given
// groups. The only error it returns is a failure to create the cache
// directory, which makes the whole run impossible; everything else is
// reported through the Summary.
func (p *Populator) Run(ctx context.Context, groups []asset.Group) (*Summary, error) {
	logger := ctxlog.FromContext(ctx)

	jobs := Collect(ctx, groups)
	logger.Debug("Fetch list computed.", "jobs", len(jobs), "workers", p.opts.Workers)

	if err := fsutil.EnsureDir(p.cacheDir); err != nil {
		return nil, err
	}

	// The fetch list is fixed before any fetch starts; results are written
	// into per-job slots so reporting order equals collection order no
	// matter how the pool schedules them.
	results := make([]Result, len(jobs))
	var eg errgroup.Group
	eg.SetLimit(p.opts.Workers)
	for i, job := range jobs {
		i, job := i, job
		eg.Go(func() error {
			results[i] = p.fetcher.fetch(ctx, p.cacheDir, job, p.opts.Force)
			return nil
		})
	}
	// Job errors are recorded in results, never returned.
	_ = eg.Wait()

	summary := &Summary{Results: results}
	for _, res := range results {
		switch res.Status {
		case StatusDownloaded:
			summary.Downloaded++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
			summary.FailedURLs = append(summary.FailedURLs, res.Job.URL)
		}
	}
	logger.Debug("Populate run finished.",
		"downloaded", summary.Downloaded, "skipped", summary.Skipped, "failed", summary.Failed)
	return summary, nil
}
