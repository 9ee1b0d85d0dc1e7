package entities

// EventSpec is the immutable input to panel rendering. All scheduling fields
// are free-form text: the panel shows them verbatim, it does not parse them.
type EventSpec struct {
	Title    string
	DateTime string
	Players  string
	Duration string
	Note     string

	BackgroundURL string
	ThumbnailURL  string
}
