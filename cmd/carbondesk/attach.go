package main

import (
	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/opencarbon/carbondesk/internal/uploader"
	"github.com/spf13/cobra"
)

// attachFlags carries the file-selection flags shared by every create/update
// command.
type attachFlags struct {
	mediaPaths []string
	docPaths   []string
	cover      string
}

func registerAttachFlags(cmd *cobra.Command, designation string) {
	cmd.Flags().StringArray("media", nil, "Image file to attach (repeatable)")
	cmd.Flags().StringArray("doc", nil, "Document file to attach (repeatable)")
	cmd.Flags().String(designation, "", "Attached image to mark as the "+designation)
}

func attachFlagsFrom(cmd *cobra.Command, designation string) attachFlags {
	media, _ := cmd.Flags().GetStringArray("media")
	docs, _ := cmd.Flags().GetStringArray("doc")
	cover, _ := cmd.Flags().GetString(designation)
	return attachFlags{mediaPaths: media, docPaths: docs, cover: cover}
}

func (f attachFlags) empty() bool {
	return len(f.mediaPaths) == 0 && len(f.docPaths) == 0
}

// newAttachSession builds the media and document queues for one screen and a
// session draining them independently.
func newAttachSession(media, docs *desksdk.AttachmentAPI, firstFileCover bool) (*uploader.Session, *uploader.Queue, *uploader.Queue) {
	mediaQueue := uploader.NewQueue(uploader.QueueConfig{
		MaxAttachments: maxAttachments,
		FirstFileCover: firstFileCover,
	})
	docQueue := uploader.NewQueue(uploader.QueueConfig{
		MaxAttachments: maxAttachments,
	})

	session := uploader.NewSession(
		uploader.NewOrchestrator(mediaQueue, media),
		uploader.NewOrchestrator(docQueue, docs),
	)
	return session, mediaQueue, docQueue
}

// stageSelection validates and enqueues the selected files, surfacing the
// consolidated rejection notice, and applies an explicit cover designation.
// No network activity happens here.
func stageSelection(f attachFlags, mediaQueue, docQueue *uploader.Queue, persistedMedia, persistedDocs int) error {
	mediaFiles, err := statAll(f.mediaPaths)
	if err != nil {
		return err
	}
	docFiles, err := statAll(f.docPaths)
	if err != nil {
		return err
	}

	if err := enqueueWithNotice(mediaQueue, mediaFiles, persistedMedia); err != nil {
		return err
	}
	if err := enqueueWithNotice(docQueue, docFiles, persistedDocs); err != nil {
		return err
	}

	if f.cover != "" {
		return designateByName(mediaQueue, f.cover)
	}
	return nil
}
