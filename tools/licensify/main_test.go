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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLicensify(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.go":               "package a\n",
		"sub/b.go":           "// Package b does things.\npackage b\n",
		"done.go":            header + "package a\n",
		"notes.txt":          "package notes\n",
		"_skip/c.go":         "package c\n",
		".hidden/d.go":       "package d\n",
		"sub/deep/e_test.go": "package deep\n",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	changed, err := licensify(root, header)
	if err != nil {
		t.Fatal(err)
	}
	for i, path := range changed {
		rel, _ := filepath.Rel(root, path)
		changed[i] = filepath.ToSlash(rel)
	}
	want := []string{"a.go", "sub/b.go", "sub/deep/e_test.go"}
	if d := cmp.Diff(want, changed); d != "" {
		t.Errorf("changed files (-want +got):\n%s", d)
	}

	body, err := os.ReadFile(filepath.Join(root, "sub", "b.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(body), header+"// Package b") {
		t.Errorf("unexpected result:\n%s", body)
	}

	// running again changes nothing
	changed, err = licensify(root, header)
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != 0 {
		t.Errorf("second run changed %v", changed)
	}
}

func TestLicensifyBadFile(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, "x.go"), []byte("\npackage x\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := licensify(root, header); err == nil {
		t.Error("file without package clause accepted")
	}
}

func TestLicensifyOtherHeader(t *testing.T) {
	root := t.TempDir()
	body := "// Copyright (C) 2019  Somebody Else\n//\n// SPDX-License-Identifier: MIT\n\npackage x\n"
	fname := filepath.Join(root, "x.go")
	if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := licensify(root, header); err == nil {
		t.Error("file with a different header accepted")
	}
	got, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != body {
		t.Error("file with a different header was modified")
	}
}
