package apitest

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-chat-genius/internal/utils"
	"github.com/MKhiriev/go-chat-genius/models"
)

func (b *Backend) setMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid mode", http.StatusBadRequest)
		return
	}

	mode, err := models.ParseMode(req.Mode)
	if err != nil {
		utils.WriteJSONError(w, "Invalid mode", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if mode == models.ModeAI && !b.aiEnabled {
		_, _ = utils.WriteJSON(w, map[string]any{
			"error": "AI mode is disabled in configuration",
			"mode":  models.ModeBasic,
		}, http.StatusBadRequest)
		return
	}

	b.mode = mode
	_, _ = utils.WriteJSON(w, map[string]any{
		"success": true,
		"message": "Mode switched to " + mode.Label(),
		"mode":    mode,
	}, http.StatusOK)
}

func (b *Backend) testAI(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	enabled, ok := b.aiEnabled, b.aiProbeOK
	b.mu.Unlock()

	switch {
	case !enabled:
		_, _ = utils.WriteJSON(w, map[string]any{"success": false, "message": "AI mode is disabled in configuration"}, http.StatusOK)
	case !ok:
		_, _ = utils.WriteJSON(w, map[string]any{"success": false, "message": "❌ DeepSeek Connection Failed", "error": "connection refused"}, http.StatusOK)
	default:
		_, _ = utils.WriteJSON(w, map[string]any{
			"success":  true,
			"message":  "✅ DeepSeek Connection Successful",
			"response": "AI connection successful to DeepSeek",
		}, http.StatusOK)
	}
}

func (b *Backend) uploadPDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	name, err := b.receiveFile(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteJSONError(w, "File too large. Maximum size is 16MB", http.StatusRequestEntityTooLarge)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		utils.WriteJSONError(w, "Please upload a PDF file", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	text, pages := b.uploadText, b.uploadPages
	b.pdfContent = text
	b.lastFile = name
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{
		"success":   true,
		"message":   "✅ PDF uploaded successfully!",
		"details":   fmt.Sprintf("Extracted %s characters from %d pages.", formatThousands(len(text)), pages),
		"summary":   preview(text, 500),
		"preview":   preview(text, 300),
		"num_pages": pages,
		"analysis":  analyze(text),
	}, http.StatusOK)
}

func (b *Backend) receiveFile(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", err
		}
		return "", errNoFile
	}

	file, header, err := r.FormFile("pdf_file")
	if err != nil {
		return "", errNoFile
	}
	defer file.Close()

	if header.Filename == "" {
		return "", errors.New("No file selected")
	}
	return header.Filename, nil
}

func (b *Backend) scrapeWebsite(w http.ResponseWriter, r *http.Request) {
	var req models.ScrapeRequest
	if err := utils.DecodeJSON(r, &req); err != nil || strings.TrimSpace(req.URL) == "" {
		utils.WriteJSONError(w, "Please provide a website URL", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	text := b.scrapeText
	b.webContent = text
	b.lastScrape = strings.TrimSpace(req.URL)
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{
		"success":  true,
		"message":  "✅ Website scraped successfully!",
		"details":  fmt.Sprintf("Extracted %s characters.", formatThousands(len(text))),
		"summary":  preview(text, 500),
		"preview":  preview(text, 300),
		"lines":    lineCount(text),
		"analysis": analyze(text),
	}, http.StatusOK)
}

func (b *Backend) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
		Mode     string `json:"mode"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil || strings.TrimSpace(req.Question) == "" {
		utils.WriteJSONError(w, "Please enter a question", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	mode := b.mode
	if parsed, err := models.ParseMode(req.Mode); err == nil {
		mode = parsed
	}
	b.lastChat = models.ChatRequest{Question: req.Question, Mode: mode}
	if b.history < b.maxHistory {
		b.history++
	}

	var reply string
	if mode == models.ModeAI && b.aiEnabled {
		reply = "AI answer: " + req.Question
	} else {
		reply = b.basicReply(req.Question)
		if mode == models.ModeAI {
			reply = "AI mode is disabled. Using basic mode instead.\n\n" + reply
		}
	}

	_, _ = utils.WriteJSON(w, map[string]any{
		"success":  true,
		"response": reply,
		"mode":     mode,
		"has_pdf":  b.pdfContent != "",
		"has_web":  b.webContent != "",
	}, http.StatusOK)
}

// basicReply answers with the backend's rule-based responses. Callers hold mu.
func (b *Backend) basicReply(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "help"):
		return "I can help you with:\n1. Upload and analyze PDF documents\n2. Scrape and analyze website content\n" +
			"3. Answer basic questions about loaded content\n4. " + AISuggestion
	case strings.Contains(q, "hello"), strings.HasPrefix(q, "hi"):
		return "Hello! I'm your document assistant. I can help you with PDF and web content analysis."
	case strings.Contains(q, "pdf") && b.pdfContent != "":
		return fmt.Sprintf("📄 **PDF Information:**\n- Characters: %s", formatThousands(len(b.pdfContent)))
	case strings.Contains(q, "web") && b.webContent != "":
		return fmt.Sprintf("🌐 **Website Information:**\n- Lines extracted: %d", lineCount(b.webContent))
	default:
		return "I can analyze your PDF and web content. Please upload a PDF or enter a website URL, then ask specific questions about the content."
	}
}

func (b *Backend) clearContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	_ = utils.DecodeJSON(r, &req)
	if req.Type == "" {
		req.Type = string(models.ContentAll)
	}

	b.mu.Lock()
	var msg strings.Builder
	if req.Type == "pdf" || req.Type == "all" {
		b.pdfContent = ""
		msg.WriteString("PDF content cleared. ")
	}
	if req.Type == "web" || req.Type == "all" {
		b.webContent = ""
		msg.WriteString("Web content cleared. ")
	}
	b.mu.Unlock()

	message := strings.TrimSpace(msg.String())
	if message == "" {
		message = "No content to clear"
	}
	_, _ = utils.WriteJSON(w, map[string]any{"success": true, "message": message}, http.StatusOK)
}

func (b *Backend) clearHistory(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	b.history = 0
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]any{"success": true, "message": "Chat history cleared"}, http.StatusOK)
}

func (b *Backend) getStatus(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.StatusResponse{
		Mode:         b.mode,
		PDFLoaded:    b.pdfContent != "",
		PDFLength:    len(b.pdfContent),
		WebLoaded:    b.webContent != "",
		WebLength:    len(b.webContent),
		HistoryCount: b.history,
		AIEnabled:    b.aiEnabled,
		MaxHistory:   b.maxHistory,
		Features:     []string{"pdf_analysis", "web_scraping", "ai_chat", "data_analysis"},
	}, http.StatusOK)
}
