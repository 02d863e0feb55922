package usecase

import (
	"strconv"
	"strings"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Serialize builds the webhook payload for the segments in order. It fails
// with domain.ErrInvalidColor when a segment color is not hex.
func Serialize(segments []model.Segment, sender model.Sender) (*model.Payload, error) {
	payload := &model.Payload{
		UserName:  sender.UserName,
		AvatarURL: sender.AvatarURL,
		Content:   sender.Content,
		Embeds:    make([]model.Embed, 0, len(segments)),
	}

	for i, segment := range segments {
		color, err := ParseColor(segment.Color)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to serialize segment", goerr.V("segment", i))
		}

		embed := model.Embed{
			Title:       segment.Title,
			Description: segment.Description,
			Color:       color,
		}
		if segment.ThumbnailURL != "" {
			embed.Thumbnail = &model.EmbedMedia{URL: segment.ThumbnailURL}
		}
		if segment.ImageURL != "" {
			embed.Image = &model.EmbedMedia{URL: segment.ImageURL}
		}
		payload.Embeds = append(payload.Embeds, embed)
	}

	return payload, nil
}

// ParseColor converts a hex color such as "2c2d45" or "#2c2d45" to its
// integer value. Values wider than 24 bits are rejected.
func ParseColor(hex string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	value, err := strconv.ParseUint(digits, 16, 24)
	if err != nil {
		return 0, domain.Wrap(domain.ErrInvalidColor, err, "color must be base-16 RGB",
			goerr.V("color", hex),
		)
	}
	return int(value), nil
}
