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

package regression

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// uniqueFilename returns a pattern for os.CreateTemp() that is used to name
// the copy of a script. the name includes the variant and a timestamp
func uniqueFilename(variant string, script string) string {
	base := strings.TrimSuffix(filepath.Base(script), filepath.Ext(script))
	return fmt.Sprintf("%s_%s_%s_*", variant, base, time.Now().Format("20060102_150405"))
}
