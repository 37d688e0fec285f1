package upload

import (
	"fmt"
	"strings"

	"github.com/mrred-labs/redterm/tui/common"
)

// View renders the upload modal.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(common.TitleStyle.Render("MR.RED // MEDIA_UPLOAD_TERMINAL"))
	b.WriteString("\n\n")
	b.WriteString(common.PromptStyle.Render("$ INITIALIZE_MEDIA_UPLOAD_PROTOCOL"))
	b.WriteString("\n\n")

	switch m.phase {
	case phasePickFile:
		b.WriteString("SELECT IMAGE FILE:\n")
		b.WriteString(m.input.View())
	case phaseAltText:
		b.WriteString(fmt.Sprintf("FILE: %s (%d KB)\n", m.ticket.FileName, m.ticket.Size/1024))
		b.WriteString("$ ENTER_IMAGE_DESCRIPTION:\n")
		b.WriteString(m.input.View())
	case phaseUploading:
		b.WriteString(fmt.Sprintf("$ UPLOAD_PROGRESS: %d%%\n", m.shown))
		b.WriteString(m.bar.View())
		b.WriteString("\nTRANSMITTING DATA TO CENTRAL SERVERS...")
	case phaseFailed:
		b.WriteString(fmt.Sprintf("FILE: %s\n", m.ticket.FileName))
		b.WriteString("PRESS [ENTER] TO RETRY UPLOAD")
	}
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(common.ErrorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render("PRESS [ESC] TO ABORT | MR.RED MEDIA UPLOAD PROTOCOL v1.0"))
	return b.String()
}
