/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"
)

// ArchiveName is the default file name of an exported archive.
const ArchiveName = "oceanbase-design-tokens.zip"

// WriteArchive writes files into a deflated zip archive. Entries are
// stamped with modified so archives built from the same files are identical.
func WriteArchive(w io.Writer, files []File, modified time.Time) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("adding %s: %w", f.Name, err)
		}
		if _, err := entry.Write(f.Data); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}
