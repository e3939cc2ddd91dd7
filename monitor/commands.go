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

package monitor

import (
	"fmt"
	"sort"
	"strings"
)

// monitor keywords
const (
	cmdRead    = "READ"
	cmdWrite   = "WRITE"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdDump    = "DUMP"
	cmdFill    = "FILL"
	cmdAdvance = "ADVANCE"
	cmdReset   = "RESET"
	cmdState   = "STATE"
	cmdLoad    = "LOAD"
	cmdSave    = "SAVE"
	cmdDigest  = "DIGEST"
	cmdUnlock  = "UNLOCK"
	cmdMemviz  = "MEMVIZ"
	cmdLog     = "LOG"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

// arguments for each keyword
var usage = map[string]string{
	cmdRead:    "<address> [count]",
	cmdWrite:   "<address> <value> [value...]",
	cmdPeek:    "<address> [count]",
	cmdPoke:    "<address> <value> [value...]",
	cmdDump:    "<address> <count>",
	cmdFill:    "<value>",
	cmdAdvance: "<duration>",
	cmdReset:   "",
	cmdState:   "",
	cmdLoad:    "<file>",
	cmdSave:    "<file>",
	cmdDigest:  "[RESET]",
	cmdUnlock:  "ERASE <address> | CHIP | PROGRAM <address> <value> | ID",
	cmdMemviz:  "<file>",
	cmdLog:     "[count]",
	cmdHelp:    "[keyword]",
	cmdQuit:    "",
}

// help text for each keyword
var help = map[string]string{
	cmdRead:    "Read from the device through the command state machine. Reads can change the device status",
	cmdWrite:   "Write to the device through the command state machine. Multiple values are written to consecutive addresses",
	cmdPeek:    "Read bytes from the flash without regard to the device mode",
	cmdPoke:    "Write bytes to the flash without regard to the device mode",
	cmdDump:    "Print the flash contents as a hex dump",
	cmdFill:    "Set every byte of the flash to the value",
	cmdAdvance: "Advance the virtual clock. Durations are written like 125ms or 1s",
	cmdReset:   "Hard reset of the device. Flash contents are unaffected",
	cmdState:   "Print the state of the device and any pending events",
	cmdLoad:    "Load the flash contents from a file. The file must be the same size as the flash",
	cmdSave:    "Save the flash contents to a file",
	cmdDigest:  "Add the flash contents to the running digest and print the result",
	cmdUnlock:  "Write an AMD style command sequence",
	cmdMemviz:  "Write a graphviz description of the device to a file",
	cmdLog:     "Print the most recent log entries",
	cmdHelp:    "List commands or print help for a specific command",
	cmdQuit:    "Leave the monitor",
}

func helpOverview() string {
	keywords := make([]string, 0, len(help))
	for k := range help {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	s := strings.Builder{}
	for i, k := range keywords {
		s.WriteString(fmt.Sprintf("%-10s", k))
		if i%6 == 5 {
			s.WriteString("\n")
		}
	}
	return strings.TrimSpace(s.String())
}

func helpKeyword(keyword string) (string, bool) {
	h, ok := help[keyword]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s\n\n  Usage: %s %s", h, keyword, usage[keyword]), true
}
