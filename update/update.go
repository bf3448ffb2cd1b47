// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package update downloads new CC-CEDICT data files.
//
// The read path has no dependency on this package. Refreshing a loaded
// dictionary is done by calling Download and then building a new dictionary
// from the replaced data file.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// DefaultURL is the URL of the MDBG CC-CEDICT export.
const DefaultURL = "https://www.mdbg.net/chinese/export/cedict/cedict_1_0_ts_utf-8_mdbg.txt.gz"

// ErrBadStatus indicates a non-200 response from the data file server.
var ErrBadStatus = errors.New("unexpected status")

// Options are options for downloading data files.
type Options struct {
	// Client is the HTTP client used for the download.
	Client *resty.Client

	// Attempts is the total number of download attempts.
	Attempts uint
}

// DefaultOptions is the default options for Download.
var DefaultOptions = &Options{
	Attempts: 3,
}

// Download fetches the data file at the given URL and atomically replaces
// the file at dest with it. The body is streamed to a temporary file next to
// dest and renamed into place only after the full body has been written, so
// dest is never left partially written. On failure the temporary file is
// removed and dest is untouched. Transient failures are retried.
func Download(ctx context.Context, url, dest string, options *Options) error {
	if options == nil {
		options = DefaultOptions
	}

	client := options.Client
	if client == nil {
		client = resty.New()
	}

	attempts := options.Attempts
	if attempts == 0 {
		attempts = DefaultOptions.Attempts
	}

	err := retry.Do(
		func() error {
			return download(ctx, client, url, dest)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("downloading %q: %w", url, err)
	}
	return nil
}

// download performs a single download attempt.
func download(ctx context.Context, client *resty.Client, url, dest string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "tmp-"+filepath.Base(dest)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			// Best-effort cleanup; dest has not been touched.
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	res, err := client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return fmt.Errorf("fetching: %w", err)
	}
	body := res.RawBody()
	defer body.Close()

	if res.StatusCode() != http.StatusOK {
		err = fmt.Errorf("%w: %s", ErrBadStatus, res.Status())
		if res.StatusCode() >= 400 && res.StatusCode() < 500 {
			// Client errors will not succeed on retry.
			err = retry.Unrecoverable(err)
		}
		return err
	}

	if _, err = io.Copy(tmp, body); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("replacing %q: %w", dest, err)
	}
	return nil
}
