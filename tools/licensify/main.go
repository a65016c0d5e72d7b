// seehuhn.de/go/vectors - vector field layers for image viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Licensify prepends the license header to all Go source files below the
// current directory which do not carry it yet.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/vectors - vector field layers for image viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

`

func main() {
	changed, err := licensify(".", header)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range changed {
		fmt.Println("updated " + path)
	}
}

// licensify adds hdr to every .go file below root.  Directories starting
// with "_" or "." are skipped, like the go tool does.  Files which already
// start with hdr are left alone.  Files which start with neither hdr nor a
// package clause (or a doc comment) are reported as errors, as are files
// which carry a different copyright notice.
func licensify(root, hdr string) ([]string, error) {
	var changed []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(hdr)) {
			return nil
		}
		if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("//")) {
			return fmt.Errorf("%s: unexpected file start", path)
		}
		if hasNotice(body) {
			return fmt.Errorf("%s: different licence header", path)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		err = os.WriteFile(path, append([]byte(hdr), body...), info.Mode().Perm())
		if err != nil {
			return err
		}
		changed = append(changed, path)
		return nil
	})
	return changed, err
}

// hasNotice reports whether the comment block at the start of body
// contains a copyright or licence notice.
func hasNotice(body []byte) bool {
	for line := range bytes.Lines(body) {
		if !bytes.HasPrefix(line, []byte("//")) {
			break
		}
		if bytes.Contains(line, []byte("Copyright")) || bytes.Contains(line, []byte("License")) {
			return true
		}
	}
	return false
}
