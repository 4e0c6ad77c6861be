// Command indexer builds an on-disk boolean search index from a JSONL
// document stream, mirroring index_builder_main.cpp.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"boolsearch/internal/applog"
	"boolsearch/internal/config"
	"boolsearch/internal/corpus"
	"boolsearch/internal/diskindex"
	"boolsearch/internal/zipf"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	inputPath := cfg.Index.InputPath
	indexDir := cfg.Index.Dir
	zipfPath := cfg.Index.ZipfCSVPath
	switch flag.NArg() {
	case 3:
		zipfPath = flag.Arg(2)
		fallthrough
	case 2:
		indexDir = flag.Arg(1)
		fallthrough
	case 1:
		inputPath = flag.Arg(0)
	}

	applog.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log := applog.WithComponent("indexer")

	fmt.Println("=== Boolean Search Engine - Index Builder ===")
	fmt.Printf("Input file: %s\n", inputPath)
	fmt.Printf("Index directory: %s\n", indexDir)
	fmt.Printf("Zipf analysis file: %s\n\n", zipfPath)

	counter := zipf.NewCounter()
	builder := corpus.NewBuilder(counter)

	start := time.Now()
	if err := builder.BuildFromStream(inputPath); err != nil {
		log.Error("building index from document stream", "path", inputPath, "error", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if err := diskindex.Save(indexDir, builder); err != nil {
		log.Error("saving index", "dir", indexDir, "error", err)
		os.Exit(1)
	}

	counter.Finalize()
	if err := counter.SaveCSV(zipfPath); err != nil {
		log.Error("saving zipf analysis", "path", zipfPath, "error", err)
		os.Exit(1)
	}

	printStats(builder, elapsed)

	fmt.Println("\n=== Index building complete! ===")
}

func printStats(builder *corpus.Builder, elapsed time.Duration) {
	s := builder.Stats()
	vocab := builder.VocabularySize()
	postings := builder.TotalPostings()

	avgTokensPerDoc := ratio(float64(s.TotalTokens), float64(s.DocCount))
	avgTokenLength := ratio(float64(s.TotalTokenChars), float64(s.TotalTokens))
	avgStemLength := ratio(float64(s.TotalStemChars), float64(s.TotalStems))
	reduction := 0.0
	if avgTokenLength > 0 {
		reduction = 100.0 * (avgTokenLength - avgStemLength) / avgTokenLength
	}
	avgPostingsPerTerm := ratio(float64(postings), float64(vocab))
	elapsedSeconds := elapsed.Seconds()
	kb := float64(s.TotalTextBytes) / 1024.0
	secondsPerKB := 0.0
	if kb > 0 {
		secondsPerKB = elapsedSeconds / kb
	}

	fmt.Println("\n=== Statistics ===")
	fmt.Printf("documents=%d\n", s.DocCount)
	fmt.Printf("total_tokens=%d\n", s.TotalTokens)
	fmt.Printf("total_stems=%d\n", s.TotalStems)
	fmt.Printf("avg_tokens_per_doc=%.1f\n", avgTokensPerDoc)
	fmt.Printf("avg_token_length=%.2f\n", avgTokenLength)
	fmt.Printf("avg_stem_length=%.2f\n", avgStemLength)
	fmt.Printf("stem_length_reduction=%.1f%%\n", reduction)
	fmt.Printf("vocabulary_size=%d\n", vocab)
	fmt.Printf("total_postings=%d\n", postings)
	fmt.Printf("avg_postings_per_term=%.1f\n", avgPostingsPerTerm)
	fmt.Printf("text_bytes_total=%d\n", s.TotalTextBytes)
	fmt.Printf("elapsed_seconds=%.2f\n", elapsedSeconds)
	fmt.Printf("seconds_per_kb=%.6f\n", secondsPerKB)
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
