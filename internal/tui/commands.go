package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-chat-genius/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdSendMessage(text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return actionDoneMsg{err: svc.SendMessage(ctx, text)}
	}
}

func (m appModel) cmdSetMode(mode models.Mode) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return actionDoneMsg{err: svc.SetMode(ctx, mode)}
	}
}

func (m appModel) cmdTestAI() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return actionDoneMsg{err: svc.TestAIConnection(ctx)}
	}
}

func (m appModel) cmdScrapeWebsite(rawURL string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return actionDoneMsg{err: svc.ScrapeWebsite(ctx, rawURL)}
	}
}

func (m appModel) cmdClearContent(contentType models.ContentType) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return actionDoneMsg{err: svc.ClearContent(ctx, contentType)}
	}
}

func (m appModel) cmdClearChat() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		return actionDoneMsg{err: svc.ClearChat(ctx)}
	}
}

func (m appModel) cmdRefreshStatus() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		_, err := svc.RefreshStatus(ctx)
		return statusRefreshedMsg{err: err}
	}
}

// cmdUploadPDF opens path and hands it to the controller. Problems opening
// the file are local and shown in the error overlay.
func (m appModel) cmdUploadPDF(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SessionService
	return func() tea.Msg {
		path, err := expandHome(path)
		if err != nil {
			return localErrorMsg{err: err}
		}

		f, err := os.Open(path)
		if err != nil {
			return localErrorMsg{err: fmt.Errorf("open pdf: %w", err)}
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return localErrorMsg{err: fmt.Errorf("stat pdf: %w", err)}
		}
		if info.IsDir() {
			return localErrorMsg{err: fmt.Errorf("%w: %s", errNotAFile, path)}
		}

		err = svc.UploadPDF(ctx, models.UploadFile{
			Name:   filepath.Base(path),
			Size:   info.Size(),
			Reader: f,
		})
		return actionDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return localErrorMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
