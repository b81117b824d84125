package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/exdevutem/api-exdev/slog"
	"github.com/exdevutem/api-exdev/tfIndex"
	"github.com/exdevutem/api-exdev/tokenizer"
)

const defaultTopN = 10

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <path>",
		Short: "Index the documents once and answer searches over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Serve.Addr
			}
			corpus, err := buildCorpus(cmd, cfg, opts, args[0])
			if err != nil {
				return err
			}
			slog.Infof("Listening on %s", addr)
			return http.ListenAndServe(addr, newSearchServer(corpus).Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Address to serve the server on (overrides serve.addr)")
	return cmd
}

// searchServer answers read only queries over a corpus that is never modified after construction
type searchServer struct {
	corpus *tfIndex.Corpus
	idf    tfIndex.IDFTable
	global tfIndex.TermFrequencies
}

func newSearchServer(corpus *tfIndex.Corpus) *searchServer {
	return &searchServer{
		corpus: corpus,
		idf:    corpus.ComputeIDF(),
		global: corpus.GlobalFrequencies(),
	}
}

type searchRequest struct {
	Search string `json:"search"`
	TopN   uint   `json:"topN"`
}

type searchResponse struct {
	DocID string  `json:"docId"`
	Score float64 `json:"score"`
}

type topResponse struct {
	Word      string `json:"word"`
	Frequency uint   `json:"frequency"`
}

func errWithMethodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method Not Allowed!", http.StatusMethodNotAllowed)
}

func errWithInternalServerError(w http.ResponseWriter) {
	http.Error(w, "Internal Server Error!", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	if err != nil {
		errWithInternalServerError(w)
		slog.Errorf("writeJSON: unexpected error!: %s", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(bytes); err != nil {
		slog.Errorf("writeJSON: could not respond back: %s", err)
	}
}

func (s *searchServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errWithMethodNotAllowed(w)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Could not interpret the request. Please send the POST request with JSON body as { search: <A SINGLE WORD>, topN: <TOP N results> }", http.StatusBadRequest)
		return
	}
	tokens := tokenizer.Tokenize(req.Search)
	if len(tokens) != 1 {
		http.Error(w, "search must contain exactly one word", http.StatusBadRequest)
		return
	}
	topN := req.TopN
	if topN == 0 {
		topN = defaultTopN
	}
	searchResponses := []searchResponse{}
	for _, result := range tfIndex.QueryTopN(s.corpus, s.idf, tokens[0], topN) {
		searchResponses = append(searchResponses, searchResponse{result.DocID, result.Score})
	}
	writeJSON(w, searchResponses)
}

func (s *searchServer) handleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errWithMethodNotAllowed(w)
		return
	}
	n := defaultTopN
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "n must be a non negative integer", http.StatusBadRequest)
			return
		}
		n = parsed
	}
	topResponses := []topResponse{}
	for _, term := range tfIndex.TopTerms(s.global, n) {
		topResponses = append(topResponses, topResponse{term.Word, term.Frequency})
	}
	writeJSON(w, topResponses)
}

type loggerMux struct {
	handler http.Handler
}

func (l loggerMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Infof("Got request: %s %s", r.Method, r.URL.String())
	l.handler.ServeHTTP(w, r)
}

func (s *searchServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/top", s.handleTop)
	return loggerMux{handler: mux}
}
