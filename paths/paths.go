// This file is part of Gopher84.
//
// Gopher84 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher84 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher84.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher84/curated"
)

// the base path for all resources. note that we don't use this value directly
// except in the basePath() function. that function should be used instead.
const baseResourcePath = ".gopher84"

// ResourcePath returns the path to a resource. The subPth directory is created
// if it does not exist. Either argument may be empty.
func ResourcePath(subPth string, file string) (string, error) {
	pth := filepath.Join(basePath(), subPth)

	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0o700); err != nil {
			return "", curated.Errorf("paths: %v", err)
		}
	}

	return filepath.Join(pth, file), nil
}

// basePath returns baseResourcePath unadorned if it can be found in the
// current directory. otherwise the path is placed in the user's config
// directory without the leading dot.
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cfg, baseResourcePath[1:])
}
