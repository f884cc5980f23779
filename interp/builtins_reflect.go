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
	"github.com/google/btree"
	"github.com/google/uuid"
)

func installReflectBuiltins(env *Env) {
	Declare(env, Declaration{"arity", 1, false, func(args []Value, _ *Env) Value {
		p := expectProc("arity", args, 0)
		return List{Number(p.MinArgs), boolValue(p.Variadic)}
	}})
	Declare(env, Declaration{"type", 1, false, func(args []Value, _ *Env) Value {
		return Intern(TypeName(args[0]))
	}})
	Declare(env, Declaration{"env", 0, false, func(args []Value, env *Env) Value {
		return currentFrameBindings(env)
	}})
	Declare(env, Declaration{"refc", 1, false, func(args []Value, _ *Env) Value {
		// Implementation-defined diagnostic hook: this host is garbage
		// collected rather than refcounted, so there is no meaningful count
		// to report beyond the fixed placeholder the reference counts as
		// "owned by the caller's argument slot".
		return Number(0)
	}})
	Declare(env, Declaration{"addr", 1, false, func(args []Value, _ *Env) Value {
		return String(addrOf(args[0]))
	}})
}

// currentFrameBindings backs the `env` builtin: it reports only the
// current frame's bindings (not the parent chain, see SPEC_FULL.md), in a
// deterministic order obtained by sorting symbol names through a btree
// rather than ranging a Go map directly.
func currentFrameBindings(env *Env) Value {
	names := btree.NewG(8, func(a, b string) bool { return a < b })
	for sym := range env.bindings {
		names.ReplaceOrInsert(sym.name)
	}
	if names.Len() == 0 {
		return Empty
	}
	out := make(List, 0, names.Len())
	names.Ascend(func(name string) bool {
		sym := Intern(name)
		out = append(out, List{sym, env.bindings[sym]})
		return true
	})
	return out
}

// addrCache gives addr a stable diagnostic identity per heap-allocated
// reference-identity value (Symbol, Proc, Atom, Exception) without exposing
// a raw Go pointer. Value variants without reference identity (Number,
// String, List) get a fresh diagnostic id on every call.
var addrCache = make(map[any]string)

func addrOf(v Value) string {
	switch v.(type) {
	case *Symbol, *Proc, *Atom, *Exception:
		if s, ok := addrCache[v]; ok {
			return s
		}
		s := uuid.New().String()
		addrCache[v] = s
		return s
	default:
		return uuid.New().String()
	}
}
