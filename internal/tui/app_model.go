package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type inputMode int

const (
	inputChat inputMode = iota
	inputPDFPath
	inputURL
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	panelWidth    = 36
	// header, input line, help line and spacing
	chromeHeight = 6
)

// slotView is what the side panel shows for one content source.
type slotView struct {
	loading bool
	result  *models.IngestResult
	err     string
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	width  int
	height int

	viewport  viewport.Model
	chatInput textinput.Model
	pathInput textinput.Model
	urlInput  textinput.Model
	inputMode inputMode
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	messages []models.ChatMessage
	rendered []string
	typing   bool

	mode       models.Mode
	content    models.ContentStatus
	probeState models.ProbeState
	probeText  string
	statusLine string

	pdf slotView
	web slotView

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	quitting      bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	chat := textinput.New()
	chat.Placeholder = "Ask about your PDF or website..."
	chat.Prompt = "> "
	chat.CharLimit = 4000
	chat.Focus()

	path := textinput.New()
	path.Placeholder = "/path/to/document.pdf"
	path.Prompt = "PDF: "

	url := textinput.New()
	url.Placeholder = "https://example.com"
	url.Prompt = "URL: "

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	mode := services.SessionService.Mode()

	m := appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		chatInput: chat,
		pathInput: path,
		urlInput:  url,
		spinner:   s,
		mode:      mode,
		content:   models.ContentStatus{Mode: mode},
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRefreshStatus())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case appendMessageMsg:
		m.messages = append(m.messages, msg.message)
		m.rendered = append(m.rendered, m.renderMessage(msg.message))
		m.refreshChat()
		return m, nil
	case typingMsg:
		m.typing = msg.on
		m.refreshChat()
		if m.typing {
			return m, m.spinner.Tick
		}
		return m, nil
	case clearMessagesMsg:
		m.messages = nil
		m.rendered = nil
		m.refreshChat()
		return m, nil
	case modeMsg:
		m.mode = msg.mode
		return m, nil
	case contentMsg:
		m.content = msg.status
		m.mode = msg.status.Mode
		return m, nil
	case probeMsg:
		m.probeState = msg.state
		m.probeText = msg.text
		return m, nil
	case loadingMsg:
		slot := m.slot(msg.slot)
		slot.loading = msg.loading
		if msg.loading {
			slot.err = ""
			return m, m.spinner.Tick
		}
		return m, nil
	case resultMsg:
		slot := m.slot(msg.slot)
		result := msg.result
		slot.result = &result
		slot.err = ""
		return m, nil
	case resultErrorMsg:
		m.slot(msg.slot).err = msg.text
		return m, nil
	case clearResultMsg:
		*m.slot(msg.slot) = slotView{}
		return m, nil
	case clearURLInputMsg:
		m.urlInput.Reset()
		return m, nil

	case statusRefreshedMsg:
		if msg.err != nil {
			m.statusLine = "Status unavailable: " + service.HumanizeError(msg.err)
		} else if strings.HasPrefix(m.statusLine, "Status unavailable") {
			m.statusLine = ""
		}
		return m, nil
	case actionDoneMsg:
		// The controller already rendered the outcome.
		return m, nil
	case localErrorMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case copiedMsg:
		m.statusLine = "Copied last answer to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.statusLine = ""
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			if m.typing {
				m.refreshChat()
			}
			return m, cmd
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.esc):
		if m.inputMode != inputChat {
			m.focusInput(inputChat)
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	case key.Matches(msg, keys.uploadPDF):
		m.focusInput(inputPDFPath)
		return m, textinput.Blink
	case key.Matches(msg, keys.scrapeWeb):
		m.focusInput(inputURL)
		return m, textinput.Blink
	case key.Matches(msg, keys.toggleMode):
		return m, m.cmdSetMode(m.mode.Toggle())
	case key.Matches(msg, keys.testAI):
		return m, m.cmdTestAI()
	case key.Matches(msg, keys.clearPDF):
		return m, m.cmdClearContent(models.ContentPDF)
	case key.Matches(msg, keys.clearWeb):
		return m, m.cmdClearContent(models.ContentWeb)
	case key.Matches(msg, keys.clearAll):
		return m, m.cmdClearContent(models.ContentAll)
	case key.Matches(msg, keys.clearChat):
		return m, m.cmdClearChat()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefreshStatus()
	case key.Matches(msg, keys.copy):
		text, ok := m.lastBotReply()
		if !ok {
			m.statusLine = "Nothing to copy yet"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(msg, keys.scrollUp), key.Matches(msg, keys.scrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m.updateInput(msg)
}

// submit handles enter for the focused input.
func (m appModel) submit() (tea.Model, tea.Cmd) {
	switch m.inputMode {
	case inputPDFPath:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			m.showErrorf(errEmptyPath.Error())
			return m, nil
		}
		m.pathInput.Reset()
		m.focusInput(inputChat)
		return m, m.cmdUploadPDF(path)
	case inputURL:
		rawURL := m.urlInput.Value()
		m.focusInput(inputChat)
		return m, m.cmdScrapeWebsite(rawURL)
	default:
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" {
			return m, nil
		}
		m.chatInput.Reset()
		return m, m.cmdSendMessage(text)
	}
}

func (m appModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.inputMode {
	case inputPDFPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case inputURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	default:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

func (m *appModel) focusInput(mode inputMode) {
	m.inputMode = mode
	m.chatInput.Blur()
	m.pathInput.Blur()
	m.urlInput.Blur()

	switch mode {
	case inputPDFPath:
		m.pathInput.Focus()
	case inputURL:
		m.urlInput.Focus()
	default:
		m.chatInput.Focus()
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) slot(t models.ContentType) *slotView {
	if t == models.ContentWeb {
		return &m.web
	}
	return &m.pdf
}

func (m appModel) busy() bool {
	return m.typing || m.pdf.loading || m.web.loading
}

func (m appModel) lastBotReply() (string, bool) {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Origin == models.OriginBot {
			return m.messages[i].Text, true
		}
	}
	return "", false
}

// resize lays the chat viewport out next to the side panel and rebuilds the
// markdown renderer for the new width.
func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height

	chatWidth := max(width-panelWidth-4, 20)
	chatHeight := max(height-chromeHeight, 5)

	m.viewport = viewport.New(chatWidth, chatHeight)
	m.chatInput.Width = chatWidth - 4
	m.pathInput.Width = chatWidth - 8
	m.urlInput.Width = chatWidth - 8

	m.renderer = newMarkdownRenderer(chatWidth - 2)
	m.rendered = make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		m.rendered = append(m.rendered, m.renderMessage(msg))
	}
	m.refreshChat()
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
