package model

// DescriptionLimit is the largest embed description the webhook accepts,
// counted in Unicode code points.
const DescriptionLimit = 4096

const (
	DefaultProject      = "Malts"
	DefaultUserName     = "Malts Updates"
	DefaultAvatarURL    = "https://github.com/breweryteam.png"
	DefaultColor        = "2c2d45"
	DefaultThumbnailURL = "https://iili.io/KUX4gYQ.png"
	DefaultTitle        = "{{.Project}} - v{{.Version}}"
	DefaultChangelog    = "No changelog provided."
)

// Announcement is the release message as the operator describes it. Only
// Description may exceed DescriptionLimit.
type Announcement struct {
	UserName     string
	AvatarURL    string
	Content      string
	Title        string
	Description  string
	Color        string // hex, with or without leading '#'
	ThumbnailURL string // optional
	ImageURL     string // optional
}

// Sender returns the fields that stay constant across every request of a
// delivery.
func (a *Announcement) Sender() Sender {
	return Sender{
		UserName:  a.UserName,
		AvatarURL: a.AvatarURL,
		Content:   a.Content,
	}
}

// Sender identifies who posts the announcement.
type Sender struct {
	UserName  string
	AvatarURL string
	Content   string
}

// Segment is one embed worth of an Announcement.
type Segment struct {
	Title        string
	Description  string
	Color        string
	ThumbnailURL string
	ImageURL     string
}
