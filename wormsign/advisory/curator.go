package advisory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/wormsign/wormsign/internal"
	"github.com/wormsign/wormsign/internal/bus"
	"github.com/wormsign/wormsign/internal/file"
	"github.com/wormsign/wormsign/internal/log"
	"github.com/wormsign/wormsign/wormsign/event"
)

// FileName is the name of the advisory feed file within the cache directory.
const FileName = "packages.csv"

// ErrFeedUnavailable indicates the advisory feed could not be fetched from its configured source.
var ErrFeedUnavailable = errors.New("advisory feed unavailable")

type Config struct {
	CacheDir string
	FeedURL  string
}

// Curator is responsible for downloading, caching, and loading the known-compromised-package feed.
type Curator struct {
	fs     afero.Fs
	config Config
	client file.Getter
}

func NewCurator(cfg Config) Curator {
	return Curator{
		fs:     afero.NewOsFs(),
		config: cfg,
		client: file.NewGetter(nil),
	}
}

// CachePath is the location of the cached advisory feed on disk.
func (c *Curator) CachePath() string {
	return path.Join(c.config.CacheDir, FileName)
}

// Exists indicates whether a cached advisory feed is present (fresh or not).
func (c *Curator) Exists() bool {
	return file.Exists(c.fs, c.CachePath())
}

// Load parses the cached advisory feed into a lookup Set. The cache must already exist; use
// Update to populate it from the configured URL.
func (c *Curator) Load() (Set, error) {
	reader, err := c.fs.Open(c.CachePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no advisory feed cache at %q (run '%s feed update' first)", c.CachePath(), internal.ApplicationName)
		}
		return nil, fmt.Errorf("unable to open advisory feed cache: %w", err)
	}
	defer reader.Close()

	set, err := ParseRecords(reader)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %d advisory entries from %q", set.Count(), c.CachePath())
	return set, nil
}

// Update downloads the advisory feed from the configured URL, validates it, and activates it at
// the cache path. The given context bounds the fetch (use a timeout to keep a live scan from
// hanging on an unresponsive feed host).
func (c *Curator) Update(ctx context.Context) error {
	monitor := &progress.Manual{}
	bus.Publish(partybus.Event{
		Type:  event.UpdateAdvisoryFeed,
		Value: progress.Progressable(monitor),
	})
	defer monitor.SetCompleted()

	// note: the temp directory is persisted upon download/validation/activation failure to allow for investigation
	tempDir, err := afero.TempDir(c.fs, "", "wormsign-feed")
	if err != nil {
		return fmt.Errorf("unable to create feed temp dir: %w", err)
	}
	tempFile := path.Join(tempDir, FileName)

	if err := c.client.GetFile(ctx, tempFile, c.config.FeedURL, monitor); err != nil {
		return fmt.Errorf("%w: unable to download feed: %v", ErrFeedUnavailable, err)
	}

	if err := c.validate(tempFile); err != nil {
		return fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	if err := c.activate(tempFile); err != nil {
		return fmt.Errorf("unable to activate advisory feed cache: %w", err)
	}

	log.Infof("advisory feed cache updated at %q", c.CachePath())
	return c.fs.RemoveAll(tempDir)
}

// validate checks that the downloaded payload parses as an advisory feed and is not empty. An
// empty baseline must be distinguishable from a clean scan, so it is rejected here.
func (c *Curator) validate(feedPath string) error {
	reader, err := c.fs.Open(feedPath)
	if err != nil {
		return fmt.Errorf("unable to open downloaded feed: %w", err)
	}
	defer reader.Close()

	set, err := ParseRecords(reader)
	if err != nil {
		return err
	}
	if set.Count() == 0 {
		return fmt.Errorf("downloaded feed contains no advisory entries")
	}
	return nil
}

// activate swaps the validated download into the cache location.
func (c *Curator) activate(feedPath string) error {
	if err := c.fs.MkdirAll(c.config.CacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create feed cache directory: %w", err)
	}
	return file.CopyFile(c.fs, feedPath, c.CachePath())
}

// Delete removes the advisory feed cache directory.
func (c *Curator) Delete() error {
	return c.fs.RemoveAll(c.config.CacheDir)
}

// Status reports the state of the advisory feed cache.
func (c *Curator) Status() Status {
	info, err := c.fs.Stat(c.CachePath())
	if err != nil {
		return Status{
			Location: c.CachePath(),
			Err:      fmt.Errorf("no advisory feed cache found: %w", err),
		}
	}

	set, err := c.Load()
	if err != nil {
		return Status{
			Location: c.CachePath(),
			Built:    info.ModTime(),
			Err:      err,
		}
	}

	return Status{
		Location: c.CachePath(),
		Built:    info.ModTime(),
		Count:    set.Count(),
	}
}
