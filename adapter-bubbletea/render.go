package bubble_adapter

import (
	"strconv"
	"strings"
)

const tabWidth = 4

// lineNumberWidth computes the gutter width, excluding the separating space
func lineNumberWidth(totalLines int) int {
	return max(3, len(strconv.Itoa(max(1, totalLines))))
}

// renderContent draws the buffer with the cursor marker inserted at the
// cursor offset and, optionally, a line number gutter.
func (m *Model) renderContent() string {
	content := m.editor.Content()
	loc := min(max(0, m.editor.CursorLocation()), len(content))
	marked := content[:loc] + m.theme.CursorStyle.Render(m.cursorMarker) + content[loc:]

	lines := strings.Split(marked, "\n")
	cursorRow := m.editor.Position().Row
	gutter := lineNumberWidth(len(lines))

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		if m.showLineNumbers {
			style := m.theme.LineNumberStyle
			if i == cursorRow {
				style = m.theme.CurrentLineNumberStyle
			}
			b.WriteString(style.Width(gutter).Render(strconv.Itoa(i + 1)))
			b.WriteByte(' ')
		}

		b.WriteString(strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)))
	}

	return b.String()
}

// refresh re-renders the viewport and scrolls it so the cursor line stays visible.
func (m *Model) refresh() {
	if m.editor == nil {
		return
	}

	m.viewport.SetContent(m.renderContent())

	row := m.editor.Position().Row
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}
