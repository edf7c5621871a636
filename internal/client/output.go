// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"io"

	"github.com/tidwall/pretty"
)

// writeJSON writes data indented. Empty payloads (e.g. 204) print nothing.
func writeJSON(w io.Writer, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	_, err := w.Write(pretty.Pretty(data))
	return err
}
