package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/client/session"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
)

// AvatarController drives avatar replacement: pick an image, let the
// session store apply the size gate and upload, and report the outcome.
type AvatarController struct {
	submitGuard
	session *session.Store
	notify  Notifier
	log     logging.Logger
}

func NewAvatarController(store *session.Store, notify Notifier, log logging.Logger) *AvatarController {
	return &AvatarController{session: store, notify: notify, log: log}
}

// Submit picks an image through the given picker and uploads it. A
// dismissed picker ends the submission silently. An oversized file is
// reported without any network call having been made.
func (c *AvatarController) Submit(ctx context.Context, picker device.ImagePicker) {
	gen, ctx, ok := c.begin(ctx)
	if !ok {
		return
	}

	ref, err := picker.Pick(ctx)
	if err == nil {
		err = c.session.UpdateAvatar(ctx, ref)
	}

	if !c.finish(gen) {
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, device.ErrCanceled):
			// Dismissing the picker is not a failure.
		case errors.Is(err, session.ErrFileTooLarge):
			limitMB := c.session.UploadLimit().MaxBytes / (1 << 20)
			c.notify.Notify(NotifyError, fmt.Sprintf("This image is too big. Choose one up to %d MB.", limitMB))
		default:
			reportFailure(ctx, c.notify, c.log, "update avatar", err)
		}
		return
	}

	c.notify.Notify(NotifySuccess, "Photo updated!")
}
