package parser

import (
	"os"
	"time"

	coreerrors "scar/internal/core/errors"
	"scar/internal/shared/observability"
)

// Extraction is the per-file result of the parallel extract phase. Err is
// set when the file could not be read; such files contribute no includes
// and never abort the batch.
type Extraction struct {
	File     *SourceFile
	Includes []RawInclude
	Err      error
}

// ExtractAll reads and scans every path using a bounded worker pool.
// Extraction of distinct files is independent, so order of execution is
// arbitrary; results come back in input order.
func ExtractAll(paths []string, workers int) []Extraction {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]Extraction, len(paths))
	jobs := make(chan int)

	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				results[i] = extractOne(paths[i])
			}
			done <- struct{}{}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	for w := 0; w < workers; w++ {
		<-done
	}

	return results
}

func extractOne(path string) Extraction {
	start := time.Now()
	defer func() {
		observability.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	file := NewSourceFile(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return Extraction{
			File: file,
			Err:  coreerrors.Wrap(err, coreerrors.CodeUnreadableFile, "read source file"),
		}
	}

	return Extraction{
		File:     file,
		Includes: ExtractIncludes(path, content),
	}
}
