// seehuhn.de/go/bbox - rectangle algebra for graphics layers
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

// Licensify adds the GPL license header to all Go source files below the
// current directory.  With -check, it only lists the files which need
// updating and exits with a non-zero status if there are any.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/bbox - rectangle algebra for graphics layers
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
	check := flag.Bool("check", false, "only report files without header")
	flag.Parse()

	missing, err := walk(os.DirFS("."), ".")
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range missing {
		if *check {
			fmt.Println("missing header: " + path)
			continue
		}
		fmt.Println("updating " + path)
		err := addHeader(path)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *check && len(missing) > 0 {
		os.Exit(1)
	}
}

// walk returns the Go files below root which lack the license header.
// Reference material in directories starting with "_" or "." is skipped,
// as is the go tool.
func walk(fsys fs.FS, root string) ([]string, error) {
	var missing []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
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

		body, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) {
			return nil
		}
		if !bytes.HasPrefix(body, []byte("package ")) {
			fmt.Println("ATTENTION " + path)
			return nil
		}
		missing = append(missing, filepath.FromSlash(path))
		return nil
	})
	return missing, err
}

func addHeader(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = fd.Write([]byte(header))
	if err != nil {
		fd.Close()
		return err
	}
	_, err = fd.Write(body)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
