// Command outline extracts document outlines for every supported file
// in an input directory and writes one JSON file per document to an
// output directory.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/source"
)

func main() {
	inputDir := flag.String("input", "input", "directory of documents to process")
	outputDir := flag.String("output", "output", "directory for outline JSON files")
	workers := flag.Int("workers", 4, "number of concurrent documents")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if *workers <= 0 {
		*workers = 1
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Error("failed to create output directory", "path", *outputDir, "error", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*inputDir)
	if err != nil {
		log.Error("failed to read input directory", "path", *inputDir, "error", err)
		os.Exit(1)
	}

	opts := outline.DefaultOptions()

	var wg sync.WaitGroup
	sem := make(chan struct{}, *workers)
	failed := false
	var mu sync.Mutex

	for _, entry := range entries {
		if entry.IsDir() || !source.IsSupportedExtension(entry.Name()) {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := processFile(*inputDir, *outputDir, name, opts, log); err != nil {
				log.Error("processing failed", "file", name, "error", err)
				mu.Lock()
				failed = true
				mu.Unlock()
			}
		}(entry.Name())
	}
	wg.Wait()

	if failed {
		os.Exit(1)
	}
}

func processFile(inputDir, outputDir, name string, opts outline.Options, log *slog.Logger) error {
	provider, err := source.ForFile(name)
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Join(inputDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	spans, err := provider.Spans(f, name)
	if err != nil {
		return err
	}

	result := outline.Extract(spans, opts)
	log.Info("outline extracted", "file", name, "title", result.Title, "headings", len(result.Headings))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	return os.WriteFile(filepath.Join(outputDir, base+".json"), append(data, '\n'), 0o644)
}
