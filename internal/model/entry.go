package model

// Entry is one line of shell scroll-back: the command as typed (trimmed)
// and the text it produced. Dir is the working directory the command ran
// in, kept so old prompts render as they were. Entries are never modified
// once appended.
type Entry struct {
	Command string `json:"command"`
	Output  string `json:"output"`
	Dir     string `json:"dir"`
}

// Snippet is the code shown by the viewer before the shell is opened.
type Snippet struct {
	Filename    string
	Language    string
	Code        string
	LineNumbers bool
	AllowClose  bool
}
