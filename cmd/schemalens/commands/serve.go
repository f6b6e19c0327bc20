package commands

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erraggy/schemalens/explorer"
	"github.com/erraggy/schemalens/lenserrors"
	"github.com/erraggy/schemalens/resolver"
	"github.com/erraggy/schemalens/store"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr        string
	StaticDir   string
	MaxRefDepth int
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", ":8080", "address to listen on")
	fs.StringVar(&flags.StaticDir, "static", "", "optional directory of static assets served at /")
	fs.IntVar(&flags.MaxRefDepth, "max-ref-depth", resolver.DefaultMaxRefDepth, "named-schema reference hops to expand before collapsing")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: schemalens serve [flags] <file>\n\n")
		Writef(output, "Serve the schema explorer over HTTP.\n\n")
		Writef(output, "Endpoints:\n")
		Writef(output, "  GET /health           liveness probe\n")
		Writef(output, "  GET /tree             all schemas as tree nodes\n")
		Writef(output, "  GET /schema/{name}    one resolved schema\n")
		Writef(output, "  GET /search?q=...     substring search\n")
		Writef(output, "  GET /versions         distinct version markers\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleServe executes the serve command
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("serve command requires exactly one file path")
	}

	st, err := store.Load(store.WithFilePath(fs.Arg(0)))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	r, err := resolver.New(st,
		resolver.WithMaxRefDepth(flags.MaxRefDepth),
		resolver.WithLogger(resolver.NewSlogAdapter(logger)))
	if err != nil {
		return err
	}

	handler := NewExplorerHandler(explorer.New(st, explorer.WithResolver(r)), flags.StaticDir)

	server := &http.Server{
		Addr:              flags.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", flags.Addr, "document", st.SourcePath())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// NewExplorerHandler builds the HTTP handler exposing the explorer endpoints.
// When staticDir is non-empty its contents are served at the root path.
func NewExplorerHandler(exp *explorer.Explorer, staticDir string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /tree", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, exp.Tree())
	})

	mux.HandleFunc("GET /schema/{name}", func(w http.ResponseWriter, r *http.Request) {
		detail, err := exp.Describe(r.PathValue("name"))
		if err != nil {
			if errors.Is(err, lenserrors.ErrSchemaNotFound) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, detail)
	})

	mux.HandleFunc("GET /search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, exp.Search(r.URL.Query().Get("q")))
	})

	mux.HandleFunc("GET /versions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, exp.Versions())
	})

	if staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(staticDir)))
	} else {
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"service":   "schemalens",
				"endpoints": []string{"/health", "/tree", "/schema/{name}", "/search?q=", "/versions"},
			})
		})
	}

	return corsMiddleware(mux)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
