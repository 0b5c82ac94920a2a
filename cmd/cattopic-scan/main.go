package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	cattopic "github.com/Codeniu/CattoPic"
)

var (
	dir          = flag.String("dir", ".", "directory to scan for images")
	settingsFile = flag.String("settings", "", "path to a YAML settings file")
	threads      = flag.Int("threads", 0, "number of concurrent workers (overrides settings)")
)

type result struct {
	path string
	info *cattopic.ImageInfo
	skip string
}

func main() {
	flag.Parse()

	settings := cattopic.DefaultSettings()
	if *settingsFile != "" {
		s, err := cattopic.LoadSettings(*settingsFile)
		if err != nil {
			log.Fatalf("failed to load settings: %v", err)
		}
		settings = s
	}

	concurrency := settings.Concurrency
	if *threads > 0 {
		concurrency = *threads
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	paths, err := collectFiles(*dir)
	if err != nil {
		log.Fatalf("failed to scan %s: %v", *dir, err)
	}
	if len(paths) == 0 {
		fmt.Println("no files found")
		return
	}

	progress := progressbar.Default(int64(len(paths)))
	results := make([]result, len(paths))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			defer func() { _ = progress.Add(1) }()
			results[i] = inspect(path, settings)
			return nil
		})
	}
	_ = g.Wait()
	_ = progress.Finish()

	for _, r := range results {
		if r.skip != "" {
			fmt.Printf("%s: skipped (%s)\n", r.path, r.skip)
			continue
		}
		fmt.Printf("%s: %s %dx%d %s\n", r.path, r.info.Format, r.info.Width, r.info.Height, r.info.Orientation)
	}
}

// inspect applies the configured limits to a single file and extracts its
// metadata. Failures are reported per file, never aborting the scan.
func inspect(path string, settings cattopic.Settings) result {
	fi, err := os.Stat(path)
	if err != nil {
		log.Printf("failed to stat %s: %v", path, err)
		return result{path: path, skip: "unreadable"}
	}
	if !settings.AcceptsSize(fi.Size()) {
		return result{path: path, skip: "file too large"}
	}

	info, err := cattopic.InfoFromFile(path)
	if err != nil {
		log.Printf("failed to read %s: %v", path, err)
		return result{path: path, skip: "unreadable"}
	}
	if !settings.AcceptsFormat(string(info.Format)) {
		return result{path: path, skip: fmt.Sprintf("format %s not allowed", info.Format)}
	}

	return result{path: path, info: info}
}

// collectFiles gathers every regular file under root. Detection is
// content-based, so no extension filtering happens here.
func collectFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
