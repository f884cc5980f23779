/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package interp

import (
	"strconv"
	"strings"
)

var printEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Display prints v without escapes: strings print raw.
func Display(v Value) string {
	return printValue(v, false)
}

// Readable prints v with strings quoted and re-escaped, suitable for
// round-tripping through the reader.
func Readable(v Value) string {
	return printValue(v, true)
}

func printValue(v Value, readable bool) string {
	switch val := v.(type) {
	case *Symbol:
		return val.name
	case Number:
		return strconv.FormatInt(int64(val), 10)
	case String:
		if readable {
			return `"` + printEscaper.Replace(string(val)) + `"`
		}
		return string(val)
	case nilType:
		return "nil"
	case trueType:
		return "true"
	case falseType:
		return "false"
	case List:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = printValue(e, readable)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Proc:
		kind := "procedure"
		if val.IsMacro {
			kind = "macro"
		}
		if val.Name != "" {
			return "#<" + kind + ":" + val.Name + ">"
		}
		return "#<" + kind + ">"
	case *Atom:
		return "(atom " + printValue(val.Val, readable) + ")"
	case *Exception:
		return "#<exn>"
	default:
		return "#<unknown>"
	}
}
