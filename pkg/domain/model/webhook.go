package model

// Payload represents the JSON body accepted by a Discord-compatible webhook
type Payload struct {
	UserName  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Content   string  `json:"content,omitempty"`
	Embeds    []Embed `json:"embeds"`
}

// Embed represents a rich embed in a webhook message
type Embed struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description"`
	Color       int         `json:"color"`
	Thumbnail   *EmbedMedia `json:"thumbnail,omitempty"`
	Image       *EmbedMedia `json:"image,omitempty"`
}

// EmbedMedia is the {"url": ...} object used by thumbnail and image
type EmbedMedia struct {
	URL string `json:"url"`
}

// Requests splits the payload into one request body per embed, preserving
// order. Content is only carried by the first request.
func (p *Payload) Requests() []Payload {
	if len(p.Embeds) == 0 {
		return []Payload{{
			UserName:  p.UserName,
			AvatarURL: p.AvatarURL,
			Content:   p.Content,
			Embeds:    []Embed{},
		}}
	}

	requests := make([]Payload, len(p.Embeds))
	for i, embed := range p.Embeds {
		requests[i] = Payload{
			UserName:  p.UserName,
			AvatarURL: p.AvatarURL,
			Embeds:    []Embed{embed},
		}
	}
	requests[0].Content = p.Content
	return requests
}
