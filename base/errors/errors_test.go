// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("shader missing")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "shader missing")
}

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprint("code ", e.code) }

func TestStd(t *testing.T) {
	base := &codeError{code: 2}
	err := fmt.Errorf("wrapped: %w", base)
	assert.True(t, Is(err, base))
	var ce *codeError
	assert.True(t, As(err, &ce))
	assert.Equal(t, 2, ce.code)
	j := Join(nil, err)
	assert.True(t, Is(j, base))
	assert.Nil(t, Join(nil, nil))
}
