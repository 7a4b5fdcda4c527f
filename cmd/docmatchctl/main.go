// Command docmatchctl compares a job description and a resume from the
// command line and prints the score with a term-frequency chart.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"

	docmatch "github.com/kailas-cloud/docmatch/pkg/sdk"
)

var (
	jobPath    = flag.String("jd", "", "Path to the job description (.txt, .html, .pdf, .docx)")
	resumePath = flag.String("resume", "", "Path to the resume (.txt, .html, .pdf, .docx)")
	topTerms   = flag.Int("top", 10, "Number of terms to chart per document")
	stopwords  = flag.String("stopwords", "", "Stopword list file (default: embedded English list)")
	cacheAddr  = flag.String("cache", "", "Valkey address for the result cache (empty = no cache)")
	noColor    = flag.Bool("no-color", false, "Disable colored output")
	verbose    = flag.Bool("v", false, "Log SDK operations to stderr")
)

func main() {
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	if *jobPath == "" || *resumePath == "" {
		fmt.Fprintln(os.Stderr, "usage: docmatchctl -jd <file> -resume <file> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	jd, err := readFile(*jobPath)
	if err != nil {
		return err
	}
	resume, err := readFile(*resumePath)
	if err != nil {
		return err
	}

	opts := []docmatch.Option{docmatch.WithMaxTerms(max(*topTerms, 1))}
	if *stopwords != "" {
		opts = append(opts, docmatch.WithStopwordsFile(*stopwords))
	}
	if *cacheAddr != "" {
		opts = append(opts,
			docmatch.WithValkeyCache(*cacheAddr, os.Getenv("DOCMATCH_CACHE_PASSWORD")),
			docmatch.WithStandalone(),
		)
	}
	if *verbose {
		opts = append(opts, docmatch.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	}

	client, err := docmatch.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer client.Close()

	res, err := client.CompareFiles(ctx, jd, resume)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	printReport(out, res)
	return nil
}

func readFile(path string) (docmatch.File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return docmatch.File{}, fmt.Errorf("read %s: %w", path, err)
	}
	return docmatch.File{Name: filepath.Base(path), Data: data}, nil
}

const barWidth = 30

func printReport(w io.Writer, res docmatch.Result) {
	bold := color.New(color.Bold).SprintFunc()
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", bold("Similarity:"), scoreColor(res.Similarity).Sprint(res.Display))
	fmt.Fprintf(w, "Vocabulary: %d terms\n\n", res.VocabularySize)

	printChart(w, boldGreen("Job description"), res.JobDescription)
	printChart(w, boldGreen("Resume"), res.Resume)

	fmt.Fprintf(w, "%s %s\n", bold("Shared: "), joinTerms(res.SharedTerms))
	fmt.Fprintf(w, "%s %s\n", bold("Missing:"), color.YellowString(joinTerms(res.MissingTerms)))
}

func printChart(w io.Writer, title string, s docmatch.Summary) {
	fmt.Fprintf(w, "%s (%d tokens)\n", title, s.TokenCount)
	if len(s.Terms) == 0 {
		fmt.Fprintln(w, "  (no terms)")
		fmt.Fprintln(w)
		return
	}

	peak, width := 0, 0
	for _, tc := range s.Terms {
		peak = max(peak, tc.Count)
		width = max(width, len(tc.Term))
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	for _, tc := range s.Terms {
		bar := strings.Repeat("█", max(1, tc.Count*barWidth/peak))
		fmt.Fprintf(w, "  %-*s %s %d\n", width, tc.Term, cyan(bar), tc.Count)
	}
	fmt.Fprintln(w)
}

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 0.6:
		return color.New(color.FgGreen, color.Bold)
	case score >= 0.3:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func joinTerms(tc []docmatch.TermCount) string {
	if len(tc) == 0 {
		return "-"
	}
	terms := make([]string, len(tc))
	for i, c := range tc {
		terms[i] = c.Term
	}
	return strings.Join(terms, ", ")
}
