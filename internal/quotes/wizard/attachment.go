package wizard

import (
	"context"
	"encoding/base64"

	"cleanquote_backend/internal/quotes/transport"

	"golang.org/x/sync/errgroup"
)

// File is a raw file handed to the wizard by the host.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Attachment pairs an accepted file with its inline preview representation.
// Keeping both in one value means the preview list and the file list cannot
// drift apart under add/remove operations.
type Attachment struct {
	File    File
	Preview string
}

// transcode renders the file as a self-contained data URI.
func transcode(f File) string {
	mime := f.MIME
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// transcodeAll encodes the accepted files concurrently and returns the
// attachments in input order. All encodes complete before the result is used.
func transcodeAll(ctx context.Context, files []File) ([]Attachment, error) {
	attachments := make([]Attachment, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			attachments[i] = Attachment{File: f, Preview: transcode(f)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return attachments, nil
}

// oversize reports whether the file exceeds the per-attachment ceiling.
func oversize(f File) bool {
	return len(f.Data) > transport.MaxImageBytes
}
