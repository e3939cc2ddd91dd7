// This file is part of Gopherflash.
//
// Gopherflash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherflash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherflash.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherflash/curated"
)

// Sentinal error returned by JoinPath().
const PathError = "resources: %v"

// JoinPath places the path under the resource directory for the build. Paths
// already inside the resource directory are left alone.
//
// Every directory leading to the final element is created. The final element
// is not touched.
func JoinPath(path ...string) (string, error) {
	base, err := resourcePath()
	if err != nil {
		return "", curated.Errorf(PathError, err)
	}

	p := filepath.Join(path...)
	if rel, err := filepath.Rel(base, p); err != nil || strings.HasPrefix(rel, "..") {
		p = filepath.Join(base, p)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", curated.Errorf(PathError, err)
	}

	return p, nil
}
