package usecase

import (
	"unicode/utf8"

	"github.com/breweryteam/releasehook/pkg/domain/model"
)

// Compose splits the announcement into ordered segments whose descriptions
// hold at most limit code points each. Title, color and media are repeated on
// every segment. An empty description still yields one segment. A
// non-positive limit means model.DescriptionLimit.
func Compose(announcement *model.Announcement, limit int) []model.Segment {
	if limit <= 0 {
		limit = model.DescriptionLimit
	}

	chunks := splitDescription(announcement.Description, limit)
	segments := make([]model.Segment, len(chunks))
	for i, chunk := range chunks {
		segments[i] = model.Segment{
			Title:        announcement.Title,
			Description:  chunk,
			Color:        announcement.Color,
			ThumbnailURL: announcement.ThumbnailURL,
			ImageURL:     announcement.ImageURL,
		}
	}
	return segments
}

// splitDescription cuts text into consecutive chunks of limit code points.
// Joining the chunks gives back text byte for byte.
func splitDescription(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		end, count := 0, 0
		for end < len(text) && count < limit {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
			count++
		}
		chunks = append(chunks, text[:end])
		text = text[end:]
	}
	return chunks
}
