package advisory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-progress"
)

type testGetter struct {
	file  map[string]string
	calls []string
	fs    afero.Fs
}

func newTestGetter(fs afero.Fs, f map[string]string) *testGetter {
	return &testGetter{
		file: f,
		fs:   fs,
	}
}

// GetFile downloads the given URL into the given path. The URL must reference a single file.
func (g *testGetter) GetFile(_ context.Context, dst, src string, _ ...*progress.Manual) error {
	g.calls = append(g.calls, src)
	if _, ok := g.file[src]; !ok {
		return fmt.Errorf("blerg, no file!")
	}
	return afero.WriteFile(g.fs, dst, []byte(g.file[src]), 0755)
}

func newTestCurator(fs afero.Fs, getter *testGetter, cacheDir, feedURL string) Curator {
	c := NewCurator(Config{
		CacheDir: cacheDir,
		FeedURL:  feedURL,
	})

	c.fs = fs
	c.client = getter
	return c
}

const feedURL = "http://localhost/feed/packages.csv"

const feedContent = `package,version
react,19.1.1
left-pad,1.3.0
`

func TestCuratorUpdate(t *testing.T) {
	fs := afero.NewMemMapFs()
	getter := newTestGetter(fs, map[string]string{feedURL: feedContent})
	curator := newTestCurator(fs, getter, "/cache/feed", feedURL)

	if err := curator.Update(context.Background()); err != nil {
		t.Fatalf("unexpected update error: %+v", err)
	}

	if len(getter.calls) != 1 || getter.calls[0] != feedURL {
		t.Errorf("unexpected getter calls: %+v", getter.calls)
	}

	if !curator.Exists() {
		t.Fatal("expected the feed cache to exist after update")
	}

	set, err := curator.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %+v", err)
	}
	if set.Count() != 2 {
		t.Errorf("unexpected advisory entry count: %d", set.Count())
	}
	if !set.Contains(Entry{Package: "react", Version: "19.1.1"}) {
		t.Error("missing expected advisory entry")
	}
}

func TestCuratorUpdateDownloadFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	getter := newTestGetter(fs, map[string]string{})
	curator := newTestCurator(fs, getter, "/cache/feed", feedURL)

	err := curator.Update(context.Background())
	if err == nil {
		t.Fatal("expected an update error")
	}
	if !strings.Contains(err.Error(), ErrFeedUnavailable.Error()) {
		t.Errorf("unexpected error: %+v", err)
	}
	if curator.Exists() {
		t.Error("no feed cache should be activated on download failure")
	}
}

func TestCuratorUpdateRejectsEmptyFeed(t *testing.T) {
	fs := afero.NewMemMapFs()
	getter := newTestGetter(fs, map[string]string{feedURL: "package,version\n"})
	curator := newTestCurator(fs, getter, "/cache/feed", feedURL)

	err := curator.Update(context.Background())
	if err == nil {
		t.Fatal("expected an update error for an empty feed")
	}
	if !strings.Contains(err.Error(), "no advisory entries") {
		t.Errorf("unexpected error: %+v", err)
	}
	if curator.Exists() {
		t.Error("an empty feed should never be activated")
	}
}

func TestCuratorLoadWithoutCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	curator := newTestCurator(fs, newTestGetter(fs, nil), "/cache/feed", feedURL)

	_, err := curator.Load()
	if err == nil {
		t.Fatal("expected a load error without a cache")
	}
	if !strings.Contains(err.Error(), "feed update") {
		t.Errorf("error should point at the update command, got: %+v", err)
	}
}

func TestCuratorStatus(t *testing.T) {
	fs := afero.NewMemMapFs()
	getter := newTestGetter(fs, map[string]string{feedURL: feedContent})
	curator := newTestCurator(fs, getter, "/cache/feed", feedURL)

	status := curator.Status()
	if status.Err == nil {
		t.Error("expected an invalid status before any update")
	}

	if err := curator.Update(context.Background()); err != nil {
		t.Fatalf("unexpected update error: %+v", err)
	}

	status = curator.Status()
	if status.Err != nil {
		t.Errorf("unexpected status error: %+v", status.Err)
	}
	if status.Count != 2 {
		t.Errorf("unexpected status entry count: %d", status.Count)
	}
	if status.Location != curator.CachePath() {
		t.Errorf("unexpected status location: %s", status.Location)
	}
}

func TestCuratorDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	getter := newTestGetter(fs, map[string]string{feedURL: feedContent})
	curator := newTestCurator(fs, getter, "/cache/feed", feedURL)

	if err := curator.Update(context.Background()); err != nil {
		t.Fatalf("unexpected update error: %+v", err)
	}
	if err := curator.Delete(); err != nil {
		t.Fatalf("unexpected delete error: %+v", err)
	}
	if curator.Exists() {
		t.Error("expected the feed cache to be removed")
	}
}
