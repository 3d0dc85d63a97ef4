// Package apitest provides an in-process fake of the ChatGenius backend for
// tests. It serves the same endpoints, status codes and JSON envelopes as the
// real service, keeps its session state in memory, and records every request
// so tests can assert that client-side validation prevented a call.
package apitest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/utils"
	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Endpoint paths served by the backend.
const (
	PathSetMode       = "/api/set_mode"
	PathTestAI        = "/api/test_ai"
	PathUploadPDF     = "/api/upload_pdf"
	PathScrapeWebsite = "/api/scrape_website"
	PathChat          = "/api/chat"
	PathClearContent  = "/api/clear_content"
	PathClearHistory  = "/api/clear_history"
	PathGetStatus     = "/api/get_status"
)

// MaxUploadSize is the backend's request body cap.
const MaxUploadSize = 16 << 20

// AISuggestion is part of the basic-mode help reply and triggers the
// client's AI-mode nudge.
const AISuggestion = "Switch to AI mode for more advanced questions (if enabled)"

type failure struct {
	status int
	msg    string
}

// Backend is the fake server state. It is safe for concurrent use; tests
// change it through its setters while a server is running.
type Backend struct {
	mu     sync.Mutex
	logger *logger.Logger

	mode       models.Mode
	aiEnabled  bool
	aiProbeOK  bool
	pdfContent string
	webContent string
	history    int
	maxHistory int

	// uploadText is the text "extracted" from any uploaded PDF.
	uploadText  string
	uploadPages int
	// scrapeText is returned for any scraped URL.
	scrapeText string

	failures   map[string]failure
	requests   map[string]int
	requestIDs []string
	lastChat   models.ChatRequest
	lastScrape string
	lastFile   string
}

// New returns a backend in basic mode with AI enabled and no content.
func New() *Backend {
	return &Backend{
		logger:      logger.Nop(),
		mode:        models.ModeBasic,
		aiEnabled:   true,
		aiProbeOK:   true,
		maxHistory:  100,
		uploadText:  "--- Page 1 ---\nQuarterly report. Revenue grew.\n\n--- Page 2 ---\nOutlook is stable.\n\n",
		uploadPages: 2,
		scrapeText:  "Example Domain\nThis domain is for use in illustrative examples in documents.",
		failures:    make(map[string]failure),
		requests:    make(map[string]int),
	}
}

// WithLogger makes the backend log one line per request to l. It must be
// called before Start.
func (b *Backend) WithLogger(l *logger.Logger) *Backend {
	b.logger = l
	return b
}

// Start serves the backend on a local httptest server that is closed when the
// test ends, and returns its URL.
func (b *Backend) Start(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(b.Router())
	t.Cleanup(srv.Close)
	return srv.URL
}

// Router builds the chi router serving the API.
func (b *Backend) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(b.withRequestID)
	r.Use(withLogging)
	r.Use(withGZip)
	r.Use(b.record)
	r.Use(b.injectFailures)

	r.Route("/api", func(r chi.Router) {
		r.Post("/set_mode", b.setMode)
		r.Get("/test_ai", b.testAI)
		r.Post("/upload_pdf", b.uploadPDF)
		r.Post("/scrape_website", b.scrapeWebsite)
		r.Post("/chat", b.chat)
		r.Post("/clear_content", b.clearContent)
		r.Post("/clear_history", b.clearHistory)
		r.Get("/get_status", b.getStatus)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, "Resource not found", http.StatusNotFound)
	})

	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests[r.URL.Path]++
		b.requestIDs = append(b.requestIDs, r.Header.Get(utils.RequestIDHeader))
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		f, ok := b.failures[r.URL.Path]
		b.mu.Unlock()

		if ok {
			utils.WriteJSONError(w, f.msg, f.status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// FailWith makes every request to path answer status with {"error": msg}.
func (b *Backend) FailWith(path string, status int, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[path] = failure{status: status, msg: msg}
}

// Recover removes a failure installed by FailWith.
func (b *Backend) Recover(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, path)
}

// Count returns how many requests reached path.
func (b *Backend) Count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[path]
}

// Total returns the number of requests received on any path.
func (b *Backend) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, n := range b.requests {
		total += n
	}
	return total
}

// RequestIDs returns the X-Request-ID header of every request, in order.
func (b *Backend) RequestIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requestIDs...)
}

// Mode returns the backend's session mode.
func (b *Backend) Mode() models.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// SetMode changes the session mode behind the client's back.
func (b *Backend) SetMode(mode models.Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mode = mode
}

// SetAIEnabled toggles the backend's AI feature flag.
func (b *Backend) SetAIEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aiEnabled = enabled
}

// SetAIProbe controls the outcome of /api/test_ai.
func (b *Backend) SetAIProbe(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aiProbeOK = ok
}

// SetUpload sets the text and page count reported for uploaded PDFs.
func (b *Backend) SetUpload(text string, pages int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploadText = text
	b.uploadPages = pages
}

// SetScrape sets the text reported for scraped websites.
func (b *Backend) SetScrape(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scrapeText = text
}

// Content returns the lengths of the PDF and web slots.
func (b *Backend) Content() (pdf, web int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pdfContent), len(b.webContent)
}

// History returns the number of chat exchanges the backend remembers.
func (b *Backend) History() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history
}

// LastChat returns the last chat request body.
func (b *Backend) LastChat() models.ChatRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastChat
}

// LastScrape returns the last URL submitted for scraping.
func (b *Backend) LastScrape() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastScrape
}

// LastFile returns the name of the last uploaded file.
func (b *Backend) LastFile() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastFile
}

func lineCount(text string) int {
	return len(strings.Split(text, "\n"))
}

func analyze(text string) *models.ContentAnalysis {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	total := 0
	for _, line := range lines {
		total += len(line)
	}
	return &models.ContentAnalysis{
		TotalLines:      len(lines),
		TotalCharacters: len(text),
		TotalWords:      len(strings.Fields(text)),
		AvgLineLength:   float64(total) / float64(len(lines)),
	}
}

func preview(text string, n int) string {
	if len(text) > n {
		return text[:n] + "..."
	}
	return text
}

var errNoFile = errors.New("No file provided")

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	var out strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
