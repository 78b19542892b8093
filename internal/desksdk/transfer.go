package desksdk

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/opencarbon/carbondesk/internal/utils"
)

// TransferPresigned PUTs a local file's bytes to a presigned storage URL.
func TransferPresigned(ctx context.Context, url string, contentType string, path string) error {
	/*
		not routed through the req client:
		- presigned URLs reject chunked encoding, so Content-Length must be exact
		- the body should stream from disk, not buffer in memory
		- no Authorization header may be attached to a signed URL
	*/

	if !utils.FileExists(path) {
		return ErrFileNotFound
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, file)
	if err != nil {
		return err
	}
	httpReq.ContentLength = fileInfo.Size() // THIS IS IMPORTANT FOR PRESIGNED URLS
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("storage put failed: %s", resp.Status)
	}

	return nil
}
