package tui

type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	content := "Permanently delete \"" + m.title + "\"?\n"
	content += "This cannot be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
