package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/solidify/internal/core"
	"github.com/JonMunkholm/solidify/internal/logging"
	"github.com/JonMunkholm/solidify/internal/tabio"
)

// handleForm renders the upload form.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formPage.Execute(w, nil); err != nil {
		logging.FromContext(r.Context()).Error("render form", "error", err)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleConsolidate accepts two or more delimited files and returns the
// merged table. Engine failures are the user's data problems, not server
// faults: they come back as 422 with the engine's message.
func (s *Server) handleConsolidate(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadSize); err != nil {
		http.Error(w, "could not parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["inputs"]
	if len(files) < 2 {
		http.Error(w, "at least two input files are required", http.StatusBadRequest)
		return
	}

	specs, err := parseColumnSpecs(r.FormValue("columns"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	delimiter, err := parseDelimiter(r.FormValue("delimiter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	warnSimilar := 0.0
	if v := r.FormValue("warn_similar"); v != "" {
		warnSimilar, err = strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "warn_similar must be a number", http.StatusBadRequest)
			return
		}
	}

	sheets := make([]*core.Sheet, len(files))
	for i, header := range files {
		f, err := header.Open()
		if err != nil {
			http.Error(w, "could not read upload: "+err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := tabio.ReadDelimited(f, delimiter)
		f.Close()
		if err != nil {
			http.Error(w, fmt.Sprintf("could not process %s: %v", header.Filename, err), http.StatusUnprocessableEntity)
			return
		}
		sheet, err := core.NewSheet(rows, specs, i)
		if err != nil {
			http.Error(w, fmt.Sprintf("could not process %s: %v", header.Filename, err), http.StatusUnprocessableEntity)
			return
		}
		sheets[i] = sheet
	}

	sink := &core.BufferSink{}
	merged, err := core.Consolidate(sheets, core.Options{
		Filler:              r.FormValue("filler"),
		AllowMultiMerge:     r.FormValue("multi") != "",
		AllowSingleColumn:   r.FormValue("single") != "",
		WarnUnmatched:       r.FormValue("warn_unmatched") != "",
		SimilarityWarnLevel: warnSimilar,
		Diag:                sink,
		MultiMergeFlag:      "multi",
		SingleColumnFlag:    "single",
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	logger.Info("consolidated",
		"inputs", len(sheets),
		"rows", len(merged),
		"warnings", len(sink.Findings),
	)

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="consolidated.tsv"`)
	w.Header().Set("X-Solidify-Warnings", strconv.Itoa(len(sink.Findings)))
	if err := tabio.WriteDelimited(w, merged, delimiter); err != nil {
		logger.Error("write response", "error", err)
	}
}

// parseColumnSpecs parses the comma-separated key column list ("1,2,-1").
func parseColumnSpecs(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("at least one key column is required")
	}
	parts := strings.Split(value, ",")
	specs := make([]int, len(parts))
	for i, part := range parts {
		spec, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid key column %q", strings.TrimSpace(part))
		}
		specs[i] = spec
	}
	return specs, nil
}

// parseDelimiter interprets the delimiter field; "tab" and the empty
// string both mean a tab, anything else must be a single character.
func parseDelimiter(value string) (rune, error) {
	if value == "" || value == "tab" || value == "\\t" {
		return '\t', nil
	}
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	return runes[0], nil
}
