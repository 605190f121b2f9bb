// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"bytes"
	"context"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/walteh/dtfix/pkg/status"
	"github.com/walteh/dtfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 ProcessFile rewrites one file in place and reports the outcome.
// Any read, decode or write error becomes a failed result; a write that
// fails part way can leave the file truncated.
func ProcessFile(ctx context.Context, fsys afero.Fs, path string, replacer text.TextReplacer) status.FileResult {
	result, err := rewriteFile(ctx, fsys, path, replacer)
	if err != nil {
		return status.Failed(path, err)
	}
	return status.Succeeded(path, result.ReplacementCount, result.WasModified)
}

func rewriteFile(ctx context.Context, fsys afero.Fs, path string, replacer text.TextReplacer) (*text.ReplacementResult, error) {
	content, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(content) {
		return nil, errors.Errorf("decoding file: content is not valid UTF-8")
	}

	result, err := replacer.ReplaceText(ctx, bytes.NewReader(content))
	if err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	if err := writeFile(fsys, path, result.ModifiedContent); err != nil {
		return nil, err
	}

	return result, nil
}

func readFile(fsys afero.Fs, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// writeFile truncates and rewrites an existing file, keeping its permissions
func writeFile(fsys afero.Fs, path string, content []byte) (err error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for write: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing file: %w", cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}
