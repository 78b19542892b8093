package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/opencarbon/carbondesk/internal/config"
	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/opencarbon/carbondesk/internal/uploader"
	"github.com/spf13/viper"
)

// maxAttachments is the per-parent cap every screen used.
const maxAttachments = 10

func tokenStore() *config.TokenStore {
	return config.NewTokenStore(viper.GetString("token_path"))
}

// newSDK builds an API client with the stored session token. A 401 from any
// call discards the stored token and tells the user to sign in again.
func newSDK() (*desksdk.DeskSDK, error) {
	store := tokenStore()
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}

	auth := desksdk.NewAuthContext(token, func() {
		if err := store.Clear(); err != nil {
			slog.Warn("token clear", "error", err)
		}
		fmt.Fprintln(os.Stderr, yellow("session expired, run `carbondesk login` to sign in again"))
	})

	return desksdk.New(&desksdk.Config{BaseURL: viper.GetString("server_url")}, auth)
}

// statAll resolves selected paths into local file descriptions.
func statAll(paths []string) ([]uploader.LocalFile, error) {
	files := make([]uploader.LocalFile, 0, len(paths))
	for _, path := range paths {
		file, err := uploader.StatFile(path)
		if err != nil {
			return nil, fmt.Errorf("select %s: %w", path, err)
		}
		files = append(files, file)
	}
	return files, nil
}

// enqueueWithNotice enqueues a selection and prints the consolidated
// rejection notice, if any, before any network activity happens.
func enqueueWithNotice(queue *uploader.Queue, files []uploader.LocalFile, persisted int) error {
	part, err := queue.Enqueue(files, persisted)
	if err != nil {
		return err
	}
	if msg := part.Rejected.Summary(); msg != "" {
		fmt.Fprintln(os.Stderr, yellow(msg))
	}
	return nil
}

// designateByName marks the queued item matching the given path or base name
// as the queue's cover designee.
func designateByName(queue *uploader.Queue, name string) error {
	for _, item := range queue.Snapshot() {
		if item.File.Name == name || item.File.Path == name {
			return queue.SetDesignation(item.ID)
		}
	}
	return fmt.Errorf("cover file %q is not part of the selection", name)
}

// reportQueue prints per-item status after a drain; errored items stay in
// the queue for retry. Returns the number of failed items.
func reportQueue(queue *uploader.Queue) int {
	failed := 0
	for _, item := range queue.Snapshot() {
		switch item.Status {
		case uploader.StatusError:
			failed++
			fmt.Fprintf(os.Stderr, "%s %s: %s\n", red("failed"), item.File.Name, item.Err)
		case uploader.StatusQueued:
			fmt.Fprintf(os.Stderr, "%s %s\n", yellow("pending"), item.File.Name)
		}
	}
	return failed
}

func printAttachments(records []*desksdk.AttachmentRecord) {
	if len(records) == 0 {
		fmt.Println("no attachments")
		return
	}
	for _, rec := range records {
		marker := " "
		if rec.IsCover {
			marker = green("*")
		}
		fmt.Printf("%s %-24s %-10s %-26s %s\n",
			marker, rec.ID, rec.Kind, rec.OriginalName, humanize.IBytes(uint64(rec.Size)))
	}
}
