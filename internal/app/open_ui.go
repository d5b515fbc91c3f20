package app

// runOpenPrompt asks for a path and opens it in a new tab. A file that
// cannot be read leaves the tabs unchanged with a status message.
func (s *Session) runOpenPrompt() {
	path, err := s.Prompt("Open: ")
	if err != nil {
		return
	}
	_, _ = s.OpenPage(File(path))
}
