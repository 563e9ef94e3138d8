package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"slices"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"crosswarped.com/fill"
)

type SolveGridRequest struct {
	Structure []string `json:"structure"`
	Words     []string `json:"words"`
	WordScope string   `json:"wordScope"`
	MaxLength int      `json:"maxLength"`
}

type SolveGridResponse struct {
	Success bool              `json:"success"`
	Grid    string            `json:"grid,omitempty"`
	Words   map[string]string `json:"words,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, "xword-x")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word_key FROM `xword-x.FirestoreQuery.all_words` WHERE scope = %q", scope)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req SolveGridRequest) (*SolveGridResponse, error) {
	if len(req.Structure) == 0 {
		return nil, fmt.Errorf("structure must not be empty")
	}

	words := slices.Clone(req.Words)
	if req.WordScope != "" {
		scoped, err := getWords(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		log.Info().Int("count", len(scoped)).Str("scope", req.WordScope).Msg("loaded scoped words")
		words = append(words, scoped...)
	}
	if req.MaxLength > 0 {
		words = slices.DeleteFunc(words, func(w string) bool {
			return len(w) > req.MaxLength
		})
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("words must not be empty")
	}

	cw, err := fill.NewCrossword(req.Structure, words)
	if err != nil {
		return nil, fmt.Errorf("building crossword: %w", err)
	}

	start := time.Now()
	assignment, ok := fill.NewSolver(cw).Solve()
	log.Info().
		Dur("elapsed", time.Since(start)).
		Bool("solved", ok).
		Int("variables", len(cw.Variables)).
		Msg("solve finished")

	if !ok {
		return &SolveGridResponse{
			Success: false,
			Error:   "no solution exists for the given structure and words",
		}, nil
	}

	assigned := make(map[string]string, len(assignment))
	for v, w := range assignment {
		assigned[v.String()] = w
	}

	return &SolveGridResponse{
		Success: true,
		Grid:    fill.RenderGrid(cw, assignment).Repr(),
		Words:   assigned,
	}, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solveGrid(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveGridRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("error parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		response := SolveGridResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	response, err := execute(r.Context(), req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		response = &SolveGridResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("error marshaling response")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-grid", solveGrid)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
