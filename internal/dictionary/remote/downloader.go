// Package remote downloads dictionary sources published over HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
)

const DefaultMaxRetryAttempts = 3

var errNotFound = errors.New("file not found")

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.statusCode, e.body)
}

// Downloader fetches <baseURL>/<name>/<file> for every file of a source.
type Downloader struct {
	client           *resty.Client
	maxRetryAttempts uint
}

func NewDownloader(baseURL string, retryAttempts uint) *Downloader {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Downloader{
		client:           client,
		maxRetryAttempts: retryAttempts,
	}
}

// Download writes the source into userDirectory/name and returns that directory.
// Files the server does not have are skipped. The result must load as a complete
// dictionary, otherwise the error of the load is returned.
func (d *Downloader) Download(ctx context.Context, name, userDirectory string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("remote: invalid source name %q", name)
	}
	target := filepath.Join(userDirectory, name)
	if err := os.MkdirAll(target, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", target, err)
	}

	for _, file := range dictionary.SourceFiles() {
		body, err := d.fetch(ctx, path.Join(name, file))
		if errors.Is(err, errNotFound) {
			slog.Default().Warn("remote file is missing",
				slog.String("source", name),
				slog.String("file", file),
			)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("d.fetch(%s) > %w", file, err)
		}
		if err := os.WriteFile(filepath.Join(target, file), body, 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", file, err)
		}
	}

	if _, err := dictionary.LoadFS(os.DirFS(userDirectory), name); err != nil {
		return "", fmt.Errorf("dictionary.LoadFS(%s) > %w", name, err)
	}
	return target, nil
}

func (d *Downloader) fetch(ctx context.Context, filePath string) ([]byte, error) {
	var body []byte
	if err := retry.Do(
		func() error {
			res, err := d.client.R().
				SetContext(ctx).
				Get("/" + filePath)
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			switch {
			case res.StatusCode() == http.StatusOK:
				body = res.Body()
				return nil
			case res.StatusCode() == http.StatusNotFound:
				return retry.Unrecoverable(errNotFound)
			case res.StatusCode() >= http.StatusInternalServerError || res.StatusCode() == http.StatusTooManyRequests:
				return &statusError{statusCode: res.StatusCode(), body: string(res.Body())}
			default:
				return retry.Unrecoverable(&statusError{statusCode: res.StatusCode(), body: string(res.Body())})
			}
		},
		retry.Context(ctx),
		retry.Attempts(d.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return body, nil
}
