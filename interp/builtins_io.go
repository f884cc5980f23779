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
	"fmt"
	"os"
	"strings"

	units "github.com/docker/go-units"
)

func joinValues(args []Value, sep string, readable bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if readable {
			parts[i] = Readable(a)
		} else {
			parts[i] = Display(a)
		}
	}
	return strings.Join(parts, sep)
}

func installIOBuiltins(env *Env) {
	Declare(env, Declaration{"prn", 0, true, func(args []Value, _ *Env) Value {
		if len(args) > 0 {
			fmt.Println(joinValues(args, " ", true))
		}
		return Nil
	}})
	Declare(env, Declaration{"pr-str", 0, true, func(args []Value, _ *Env) Value {
		return String(joinValues(args, " ", true))
	}})
	Declare(env, Declaration{"str", 0, true, func(args []Value, _ *Env) Value {
		return String(joinValues(args, "", false))
	}})
	Declare(env, Declaration{"println", 0, true, func(args []Value, _ *Env) Value {
		if len(args) > 0 {
			fmt.Println(joinValues(args, " ", false))
		}
		return Nil
	}})
	Declare(env, Declaration{"read-string", 1, false, func(args []Value, _ *Env) Value {
		s := expectString("read-string", args, 0)
		v, err := ReadString(string(s))
		if err != nil {
			Throwf("read-string: could not parse bad syntax")
		}
		return v
	}})
	Declare(env, Declaration{"slurp", 1, false, func(args []Value, _ *Env) Value {
		path := string(expectString("slurp", args, 0))
		if _, err := os.Stat(path); err != nil {
			Throwf("slurp: can't read file %s", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			Throwf("slurp: failed to read file %s", path)
		}
		fmt.Fprintf(os.Stderr, "slurp: read %s (%s)\n", path, units.HumanSize(float64(len(data))))
		return String(data)
	}})
	Declare(env, Declaration{"eval", 1, false, func(args []Value, env *Env) Value {
		return Eval(args[0], env.Root())
	}})
	Declare(env, Declaration{"apply", 2, true, func(args []Value, env *Env) Value {
		proc := expectProc("apply", args, 0)
		last := args[len(args)-1]
		lastList, ok := last.(List)
		if !ok {
			Throwf("apply: bad last arg: expected a list")
		}
		interm := args[1 : len(args)-1]
		combined := make([]Value, 0, len(interm)+len(lastList))
		combined = append(combined, interm...)
		combined = append(combined, lastList...)
		return applyProcFull(proc, combined, env)
	}})
	Declare(env, Declaration{"map", 2, false, func(args []Value, env *Env) Value {
		proc := expectProc("map", args, 0)
		l := expectList("map", args, 1)
		if len(l) == 0 {
			return Empty
		}
		out := make(List, len(l))
		for i, e := range l {
			out[i] = applyProcFull(proc, []Value{e}, env)
		}
		return out
	}})
}
