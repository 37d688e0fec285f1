package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mrred-labs/redterm/app"
	"github.com/mrred-labs/redterm/domain"
	"github.com/mrred-labs/redterm/tui/common"
)

// phase is the upload pipeline's position: pick a file, describe it,
// transmit it.
type phase int

const (
	phasePickFile phase = iota
	phaseAltText
	phaseUploading
	phaseFailed
)

// DoneMsg reports the modal's outcome to the root model. A zero Handle
// with Cancelled set means the user aborted; Err carries a failed upload
// the user chose not to retry.
type DoneMsg struct {
	Content   string
	Handle    app.MediaHandle
	Cancelled bool
}

type uploadResultMsg struct {
	handle app.MediaHandle
	err    error
}

type progressTickMsg struct{}

// Model drives the media upload pipeline: file validation, required alt
// text, progress reporting, and retry on failure. The post text rides
// along untouched; the terminal publishes it once a handle comes back.
type Model struct {
	uploader app.MediaUploader
	log      *zap.Logger
	keys     common.KeyMap

	content string
	phase   phase
	input   textinput.Model
	bar     progress.Model

	ticket  domain.UploadTicket
	errText string

	// Transmitted fraction reported by the collaborator, 0..99. Written
	// from the upload goroutine, read by the tick loop.
	transmitted atomic.Int64
	shown       int // displayed progress; monotone, 100 only after success
}

// New creates an upload modal for a deferred media post.
func New(uploader app.MediaUploader, log *zap.Logger, content string) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "path to image file"
	ti.Focus()

	return &Model{
		uploader: uploader,
		log:      log,
		keys:     common.DefaultKeyMap(),
		content:  content,
		phase:    phasePickFile,
		input:    ti,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

// Init focuses the file input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the upload modal.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) && m.phase != phaseUploading {
			return m, m.done(DoneMsg{Content: m.content, Cancelled: true})
		}
		if key.Matches(msg, m.keys.Submit) {
			return m.submit()
		}
		if m.phase == phasePickFile || m.phase == phaseAltText {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil

	case progressTickMsg:
		if m.phase != phaseUploading {
			return m, nil
		}
		m.advanceProgress()
		return m, tea.Batch(m.bar.SetPercent(float64(m.shown)/100), tickProgress())

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		if b, ok := bar.(progress.Model); ok {
			m.bar = b
		}
		return m, cmd

	case uploadResultMsg:
		if msg.err != nil {
			// The ticket is retained so retry works without re-selecting.
			m.phase = phaseFailed
			m.errText = "ERROR: Upload failed: " + msg.err.Error()
			m.log.Warn("media upload failed", zap.Error(msg.err))
			return m, nil
		}
		// Only a resolved collaborator may take progress to 100.
		m.shown = 100
		m.ticket.Progress = 100
		return m, tea.Batch(
			m.bar.SetPercent(1),
			m.done(DoneMsg{Content: m.content, Handle: msg.handle}),
		)
	}

	return m, nil
}

func (m *Model) submit() (*Model, tea.Cmd) {
	switch m.phase {
	case phasePickFile:
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.errText = "ERROR: No file selected"
			return m, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			m.errText = "ERROR: " + err.Error()
			return m, nil
		}
		ticket, err := domain.NewUploadTicket(filepath.Base(path), data, declaredType(path))
		if err != nil {
			m.errText = "ERROR: " + err.Error()
			return m, nil
		}
		m.ticket = ticket
		m.errText = ""
		m.phase = phaseAltText
		m.input.Reset()
		m.input.Placeholder = "describe the image for accessibility"
		return m, nil

	case phaseAltText:
		alt := strings.TrimSpace(m.input.Value())
		if alt == "" {
			// Enforced before any network activity.
			m.errText = "ERROR: " + domain.ErrMissingAltText.Error()
			return m, nil
		}
		m.ticket.AltText = alt
		m.errText = ""
		return m.startUpload()

	case phaseFailed:
		// Retry with the retained ticket.
		return m.startUpload()
	}

	return m, nil
}

func (m *Model) startUpload() (*Model, tea.Cmd) {
	m.phase = phaseUploading
	m.errText = ""
	m.transmitted.Store(0)

	uploader := m.uploader
	ticket := m.ticket
	transmitted := &m.transmitted
	uploadCmd := func() tea.Msg {
		handle, err := uploader.Upload(context.Background(), ticket, func(pct int) {
			if pct > 99 {
				pct = 99
			}
			transmitted.Store(int64(pct))
		})
		return uploadResultMsg{handle: handle, err: err}
	}

	return m, tea.Batch(uploadCmd, tickProgress())
}

// advanceProgress merges the collaborator-reported fraction with a local
// simulated crawl so the bar moves even while the transfer is buffered.
// The shown value is monotone and never reaches 100 here.
func (m *Model) advanceProgress() {
	target := int(m.transmitted.Load())
	if next := m.shown + 7; next > target {
		target = next
	}
	if target > 99 {
		target = 99
	}
	if target > m.shown {
		m.shown = target
		m.ticket.Progress = target
	}
}

func (m *Model) done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

// declaredType maps a file extension to the declared MIME type, the way a
// browser file input would have filled it in.
func declaredType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}
