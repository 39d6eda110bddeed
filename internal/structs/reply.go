package structs

const ParseModeMarkdown = "Markdown"

type Button struct {
	Text string
	Data string
}

// Reply is a transport-neutral outgoing message; each button is rendered on its own row.
type Reply struct {
	Text               string
	ParseMode          string
	DisableLinkPreview bool
	Buttons            []Button
}
