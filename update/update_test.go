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

package update_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ianlewis/go-cccedict/update"
)

// TestDownload tests a successful download.
func TestDownload(t *testing.T) {
	t.Parallel()

	data := "# CC-CEDICT\n愛 爱 [ai4] /to love/\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(data))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cedict.txt")
	if err := os.WriteFile(dest, []byte("old data"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := update.Download(context.Background(), srv.URL, dest, nil); err != nil {
		t.Fatalf("Download: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if want := data; want != string(got) {
		t.Fatalf("Download; want: %q, got: %q", want, string(got))
	}

	// No temp files are left behind.
	files, err := os.ReadDir(filepath.Dir(dest))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 1, len(files); want != got {
		t.Fatalf("leftover files; want: %d, got: %d", want, got)
	}
}

// TestDownload_clientError tests that client errors fail without retry and
// leave the destination untouched.
func TestDownload_clientError(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cedict.txt")
	if err := os.WriteFile(dest, []byte("old data"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := update.Download(context.Background(), srv.URL, dest, nil); err == nil {
		t.Fatal("Download: expected failure")
	}
	if want, got := int32(1), requests.Load(); want != got {
		t.Fatalf("requests; want: %d, got: %d", want, got)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if want := "old data"; want != string(got) {
		t.Fatalf("dest; want: %q, got: %q", want, string(got))
	}
}

// TestDownload_retry tests that server errors are retried.
func TestDownload_retry(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("new data"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "cedict.txt")

	err := update.Download(context.Background(), srv.URL, dest, &update.Options{Attempts: 3})
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if want, got := int32(2), requests.Load(); want != got {
		t.Fatalf("requests; want: %d, got: %d", want, got)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if want := "new data"; want != string(got) {
		t.Fatalf("dest; want: %q, got: %q", want, string(got))
	}
}
