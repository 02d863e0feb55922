package usecase

import (
	"context"
	"encoding/json"
	"io"

	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type PreviewNotifier struct {
	w     io.Writer
	limit int
}

// NewPreviewNotifier writes the request bodies that would be posted to w,
// one indented JSON document per request, without sending anything.
func NewPreviewNotifier(w io.Writer, limit int) interfaces.Notifier {
	return &PreviewNotifier{w: w, limit: limit}
}

func (n *PreviewNotifier) Notify(ctx context.Context, announcement *model.Announcement) (*model.DeliveryResult, error) {
	payload, err := Serialize(Compose(announcement, n.limit), announcement.Sender())
	if err != nil {
		return nil, err
	}

	requests := payload.Requests()
	result := &model.DeliveryResult{
		Status: model.DeliveryStatusSkipped,
		Total:  len(requests),
	}

	for _, request := range requests {
		data, err := json.MarshalIndent(request, "", "  ")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal preview")
		}
		result.Bytes += len(data)
		if _, err := n.w.Write(append(data, '\n')); err != nil {
			return nil, goerr.Wrap(err, "failed to write preview")
		}
	}

	return result, nil
}
