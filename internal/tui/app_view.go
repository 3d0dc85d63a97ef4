package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	header := m.headerView()
	chat := lipgloss.NewStyle().Width(m.viewport.Width).Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, chat, " ", m.panelView())

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.inputView())
	b.WriteString("\n")
	b.WriteString(m.helpView())

	view := b.String()
	if m.showError {
		view += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(view)
}

func (m appModel) headerView() string {
	title := titleStyle.Render("ChatGenius")
	line := title + "  " + modeBadge(m.mode)
	if m.statusLine != "" {
		line += "  " + helpStyle.Render(m.statusLine)
	}
	return line
}

func (m appModel) inputView() string {
	switch m.inputMode {
	case inputPDFPath:
		return m.pathInput.View() + helpStyle.Render("  enter upload · esc cancel")
	case inputURL:
		return m.urlInput.View() + helpStyle.Render("  enter scrape · esc cancel")
	default:
		return m.chatInput.View()
	}
}

func (m appModel) helpView() string {
	parts := make([]string, 0, len(keys.shortHelp()))
	for _, b := range keys.shortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

// refreshChat re-renders the log into the viewport and scrolls to the end.
func (m *appModel) refreshChat() {
	var b strings.Builder
	for i, entry := range m.rendered {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(entry)
	}
	if m.typing {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.spinner.View() + " " + systemStyle.Render("Bot is typing..."))
	}
	if b.Len() == 0 {
		b.WriteString(systemStyle.Render("Welcome! Load a PDF (ctrl+o) or a website (ctrl+w), then ask a question."))
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m appModel) renderMessage(msg models.ChatMessage) string {
	width := m.viewport.Width
	wrap := lipgloss.NewStyle().Width(width)

	switch msg.Origin {
	case models.OriginUser:
		return wrap.Render(userStyle.Render("You: ") + msg.Text)
	case models.OriginBot:
		label := "Bot"
		if msg.Mode != nil {
			label = fmt.Sprintf("Bot (%s)", msg.Mode.Label())
		}
		return botStyle.Render(label+":") + "\n" + renderMarkdown(m.renderer, msg.Text)
	case models.OriginError:
		return wrap.Render(errorStyle.Render("✗ " + msg.Text))
	default:
		return wrap.Render(systemStyle.Render("• " + msg.Text))
	}
}

func (m appModel) panelView() string {
	inner := panelWidth - 4

	var b strings.Builder
	b.WriteString(labelStyle.Render("Mode: "))
	b.WriteString(modeBadge(m.mode))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("AI: "))
	b.WriteString(m.probeView(inner - 4))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("PDF: "))
	b.WriteString(slotStatus(m.content.PDF))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Web: "))
	b.WriteString(slotStatus(m.content.Web))
	b.WriteString("\n")
	if m.content.MaxHistory > 0 {
		b.WriteString(labelStyle.Render("History: "))
		b.WriteString(fmt.Sprintf("%d/%d", m.content.HistoryCount, m.content.MaxHistory))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.resultView("Last PDF", m.pdf, inner))
	b.WriteString("\n\n")
	b.WriteString(m.resultView("Last website", m.web, inner))

	return panelStyle.Width(panelWidth).Render(b.String())
}

func (m appModel) probeView(width int) string {
	switch m.probeState {
	case models.ProbeTesting:
		return m.spinner.View() + " testing"
	case models.ProbeConnected:
		return okStyle.Render("● connected")
	case models.ProbeFailed:
		return errorStyle.Render("● failed") + "\n" + helpStyle.Render(fitText(m.probeText, width))
	default:
		return helpStyle.Render("not tested")
	}
}

func (m appModel) resultView(title string, slot slotView, width int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(title))
	b.WriteString("\n")

	switch {
	case slot.loading:
		b.WriteString(m.spinner.View() + " working...")
	case slot.err != "":
		b.WriteString(errorStyle.Render(fitText(slot.err, width*3)))
	case slot.result != nil:
		r := slot.result
		if r.Message != "" {
			b.WriteString(fitText(r.Message, width))
			b.WriteString("\n")
		}
		switch {
		case r.Pages > 0:
			b.WriteString(pluralize(r.Pages, "page"))
			b.WriteString(" · ")
		case r.Lines > 0:
			b.WriteString(pluralize(r.Lines, "line"))
			b.WriteString(" · ")
		}
		if r.Analysis != nil {
			b.WriteString(formatCount(r.Analysis.TotalWords))
			b.WriteString(" words")
		} else if r.Details != "" {
			b.WriteString(fitText(r.Details, width))
		}
		if preview := strings.TrimSpace(r.Preview); preview != "" {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(fitText(strings.Join(strings.Fields(preview), " "), width*3)))
		}
	default:
		b.WriteString(helpStyle.Render("-"))
	}

	return b.String()
}

func slotStatus(slot models.ContentSlot) string {
	if !slot.Loaded {
		return helpStyle.Render("empty")
	}
	if slot.Length <= 0 {
		return okStyle.Render("loaded")
	}
	return okStyle.Render(fmt.Sprintf("loaded (%s chars)", formatCount(slot.Length)))
}

func modeBadge(mode models.Mode) string {
	if mode == models.ModeAI {
		return badgeAIStyle.Render(mode.Label())
	}
	return badgeBasicStyle.Render(mode.Label())
}
