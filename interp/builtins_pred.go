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

func installPredicates(env *Env) {
	Declare(env, Declaration{"number?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(Number)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"symbol?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(*Symbol)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"string?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(String)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"true?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(trueType)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"false?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(falseType)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"list?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(List)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"empty?", 1, false, func(args []Value, _ *Env) Value {
		l := expectList("empty?", args, 0)
		return boolValue(len(l) == 0)
	}})
	Declare(env, Declaration{"procedure?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(*Proc)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"builtin?", 1, false, func(args []Value, _ *Env) Value {
		p := expectProc("builtin?", args, 0)
		return boolValue(p.Fn != nil)
	}})
	Declare(env, Declaration{"macro?", 1, false, func(args []Value, _ *Env) Value {
		p, ok := args[0].(*Proc)
		if !ok {
			return False
		}
		return boolValue(p.IsMacro)
	}})
	Declare(env, Declaration{"atom?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(*Atom)
		return boolValue(ok)
	}})
	Declare(env, Declaration{"exn?", 1, false, func(args []Value, _ *Env) Value {
		_, ok := args[0].(*Exception)
		return boolValue(ok)
	}})
}
