package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/exdevutem/api-exdev/config"
	"github.com/exdevutem/api-exdev/fileContents"
	"github.com/exdevutem/api-exdev/slog"
	"github.com/exdevutem/api-exdev/tfIndex"
	"github.com/exdevutem/api-exdev/tokenizer"
)

const (
	topMode    = "top"
	docTopMode = "doc-top"
	tablesMode = "tables"
)

type options struct {
	configPath string
	cachePath  string
	progress   bool
	term       string
	mode       string
	top        int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "indexer <path>",
		Short: "Index documents and rank them by TF-IDF relevance",
		Long: heredoc.Doc(`
			Extracts the text of a document, or of every entry of a directory, builds a term
			frequency table per document and ranks them.

			With --term every document is printed with its tf * idf score for that word.
			Without it the most frequent words are printed, or the full tables with --mode tables.
			Documents whose text cannot be extracted are skipped.
		`),
		Example: heredoc.Doc(`
			indexer ./apuntes --term capital
			indexer ./apuntes --mode doc-top --top 5
			indexer informe.pdf --mode tables
		`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd, opts, args[0])
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Path of the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.cachePath, "cache", "", "SQLite file caching extracted text (overrides extract.cache)")
	cmd.PersistentFlags().BoolVar(&opts.progress, "progress", false, "Show a progress bar while extracting")
	cmd.Flags().StringVar(&opts.term, "term", "", "Word to rank the documents by")
	cmd.Flags().StringVar(&opts.mode, "mode", topMode, "Output without --term: top, doc-top or tables")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Number of words listed by top and doc-top (overrides rank.top)")
	cmd.AddCommand(newServeCmd(opts))
	return cmd
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("cache") {
		cfg.Extract.Cache = opts.cachePath
	}
	if err := slog.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildCorpus extracts every document under path and indexes the ones that succeed
func buildCorpus(cmd *cobra.Command, cfg *config.Config, opts *options, path string) (*tfIndex.Corpus, error) {
	reader := &fileContents.Reader{
		Includes: cfg.Extract.Includes,
		Excludes: cfg.Extract.Excludes,
	}
	if cfg.Extract.Cache != "" {
		cache, err := fileContents.OpenCache(cfg.Extract.Cache)
		if err != nil {
			slog.Warnf("Extracting without cache: %s", err)
		} else {
			defer cache.Close()
			reader.Cache = cache
		}
	}
	if opts.progress {
		reader.OnProgress = progressReporter(cmd.ErrOrStderr())
	}

	slog.Infof("Reading `%s`...", path)
	docs, errs, err := reader.FromPath(path)
	if err != nil {
		return nil, err
	}
	for _, err := range errs {
		slog.Warnf("Skipping document: %s", err)
	}
	corpus := tfIndex.NewCorpus()
	for _, doc := range docs {
		corpus.Update(doc.Path, doc.Content)
	}
	slog.Infof("Indexed %d documents, skipped %d", corpus.DocumentCount(), len(errs))
	return corpus, nil
}

func progressReporter(w io.Writer) func(processed, total int, filePath string) {
	var bar *progressbar.ProgressBar
	return func(processed, total int, filePath string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Extracting"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}
		slog.Debugf("Processed `%s`", filePath)
		bar.Set(processed)
	}
}

func runIndex(cmd *cobra.Command, opts *options, path string) error {
	term := ""
	if cmd.Flags().Changed("term") {
		term = tokenizer.Normalize(opts.term)
		if term == "" {
			return fmt.Errorf("--term `%s` has no letters to search for", opts.term)
		}
	}
	switch opts.mode {
	case topMode, docTopMode, tablesMode:
	default:
		return fmt.Errorf("unknown --mode `%s`, expected %s, %s or %s", opts.mode, topMode, docTopMode, tablesMode)
	}
	if opts.top < 0 {
		return fmt.Errorf("--top must not be negative, got %d", opts.top)
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	top := cfg.Rank.Top
	if cmd.Flags().Changed("top") {
		top = opts.top
	}
	corpus, err := buildCorpus(cmd, cfg, opts, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if term != "" {
		printScores(out, corpus, term)
		return nil
	}
	switch opts.mode {
	case tablesMode:
		printTables(out, corpus)
	case docTopMode:
		for _, docId := range corpus.Documents() {
			tf, _ := corpus.Table(docId)
			fmt.Fprintf(out, "-------- Hottest words: %s --------\n", docId)
			printRankedTerms(out, tfIndex.TopTerms(tf, top))
		}
	default:
		fmt.Fprintln(out, "-------- Hottest words -----------")
		printRankedTerms(out, tfIndex.TopTerms(corpus.GlobalFrequencies(), top))
	}
	return nil
}

func printScores(out io.Writer, corpus *tfIndex.Corpus, term string) {
	for _, result := range tfIndex.Query(corpus, corpus.ComputeIDF(), term) {
		fmt.Fprintf(out, "%s - %s\n", result.DocID, strconv.FormatFloat(result.Score, 'f', -1, 64))
	}
}

func printTables(out io.Writer, corpus *tfIndex.Corpus) {
	for _, docId := range corpus.Documents() {
		tf, _ := corpus.Table(docId)
		words := make([]string, 0, len(tf))
		for word := range tf {
			words = append(words, word)
		}
		sort.Strings(words)
		fmt.Fprintln(out, docId)
		for _, word := range words {
			fmt.Fprintf(out, "  %s: %d\n", word, tf[word])
		}
	}
}

func printRankedTerms(out io.Writer, terms []tfIndex.RankedTerm) {
	for _, term := range terms {
		fmt.Fprintf(out, "%s - %d\n", term.Word, term.Frequency)
	}
}
