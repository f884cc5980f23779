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

func installListBuiltins(env *Env) {
	Declare(env, Declaration{"symbol", 1, false, func(args []Value, _ *Env) Value {
		s := expectString("symbol", args, 0)
		return Intern(string(s))
	}})
	Declare(env, Declaration{"list", 0, true, func(args []Value, _ *Env) Value {
		if len(args) == 0 {
			return Empty
		}
		return List(append([]Value(nil), args...))
	}})
	Declare(env, Declaration{"list-ref", 2, false, func(args []Value, _ *Env) Value {
		return listRef("list-ref", args)
	}})
	Declare(env, Declaration{"list-rest", 1, false, func(args []Value, _ *Env) Value {
		return listRest("list-rest", args)
	}})
	Declare(env, Declaration{"nth", 2, false, func(args []Value, _ *Env) Value {
		if _, ok := args[0].(List); !ok {
			Throwf("nth: bad 1st arg: expected a LIST, but was %s", TypeName(args[0]))
		}
		return listRef("nth", args)
	}})
	Declare(env, Declaration{"rest", 1, false, func(args []Value, _ *Env) Value {
		if _, ok := args[0].(List); !ok {
			Throwf("rest: bad 1st arg: expected a LIST, but was %s", TypeName(args[0]))
		}
		return listRest("rest", args)
	}})
	Declare(env, Declaration{"cons", 2, false, func(args []Value, _ *Env) Value {
		l := expectList("cons", args, 1)
		out := make(List, 0, len(l)+1)
		out = append(out, args[0])
		out = append(out, l...)
		return out
	}})
	Declare(env, Declaration{"concat", 0, true, func(args []Value, _ *Env) Value {
		return concatLists(args)
	}})
	Declare(env, Declaration{"atom", 1, false, func(args []Value, _ *Env) Value {
		return &Atom{Val: args[0]}
	}})
	Declare(env, Declaration{"deref", 1, false, func(args []Value, _ *Env) Value {
		return expectAtom("deref", args, 0).Val
	}})
	Declare(env, Declaration{"atom-set!", 2, false, func(args []Value, _ *Env) Value {
		a := expectAtom("atom-set!", args, 0)
		a.Val = args[1]
		return args[1]
	}})
	Declare(env, Declaration{"swap!", 2, true, func(args []Value, env *Env) Value {
		a := expectAtom("swap!", args, 0)
		proc := expectProc("swap!", args, 1)
		procArgs := make([]Value, 0, 1+len(args)-2)
		procArgs = append(procArgs, a.Val)
		procArgs = append(procArgs, args[2:]...)
		result := applyProcFull(proc, procArgs, env)
		a.Val = result
		return result
	}})
	Declare(env, Declaration{"exn", 1, false, func(args []Value, _ *Env) Value {
		return &Exception{Payload: args[0]}
	}})
	Declare(env, Declaration{"exn-datum", 1, false, func(args []Value, _ *Env) Value {
		return expectException("exn-datum", args, 0).Payload
	}})
	Declare(env, Declaration{"throw", 1, false, func(args []Value, _ *Env) Value {
		Throw(args[0])
		return Nil // unreachable
	}})
}

func listRef(procName string, args []Value) Value {
	l := expectList(procName, args, 0)
	idx := expectNumber(procName, args, 1)
	if idx < 0 {
		Throwf("%s: expected non-negative index", procName)
	}
	if int(idx) >= len(l) {
		Throwf("%s: index too large (%d >= %d)", procName, idx, len(l))
	}
	return l[idx]
}

func listRest(procName string, args []Value) Value {
	l := expectList(procName, args, 0)
	if len(l) == 0 {
		Throwf("%s: received an empty list", procName)
	}
	return l[1:]
}

// concatLists implements the "first two non-empty lists" shape from the
// reference core.c concat: zero arguments yield the empty list; a single
// non-empty list is returned as-is; otherwise the first non-empty list is
// copied and every list from the second non-empty one onward is appended.
func concatLists(args []Value) Value {
	lists := make([]List, len(args))
	for i := range args {
		lists[i] = expectList("concat", args, i)
	}
	first, second := -1, -1
	for i, l := range lists {
		if len(l) == 0 {
			continue
		}
		if first == -1 {
			first = i
		} else if second == -1 {
			second = i
			break
		}
	}
	if first == -1 {
		return Empty
	}
	if second == -1 {
		return lists[first]
	}
	out := append(List{}, lists[first]...)
	for i := second; i < len(lists); i++ {
		out = append(out, lists[i]...)
	}
	return out
}
