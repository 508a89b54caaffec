package ui

// RenderFacePanel wraps the attractor frame with a styled border.
// The frame itself is rendered externally to avoid import cycles.
func RenderFacePanel(width, height int, frame string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(frame)
}
