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

// Declaration describes one builtin procedure for registration into an
// environment, mirroring the teacher's own Declare/Declaration idiom.
type Declaration struct {
	Name     string
	MinArgs  int
	Variadic bool
	Fn       BuiltinFn
}

// Declare registers a builtin procedure into env under its name.
func Declare(env *Env, d Declaration) {
	proc := &Proc{
		Name:     d.Name,
		Fn:       d.Fn,
		MinArgs:  d.MinArgs,
		Variadic: d.Variadic,
	}
	env.Define(Intern(d.Name), proc)
}

func boolValue(b bool) Value {
	if b {
		return True
	}
	return False
}

// InstallCoreBuiltins binds nil/true/false and every core builtin from
// §4.7 into env, which is expected to be the root environment.
func InstallCoreBuiltins(env *Env) {
	env.Define(symNil, Nil)
	env.Define(symTrue, True)
	env.Define(symFalse, False)

	installArith(env)
	installPredicates(env)
	installListBuiltins(env)
	installIOBuiltins(env)
	installReflectBuiltins(env)
}

func expectNumber(procName string, args []Value, idx int) Number {
	n, ok := args[idx].(Number)
	if !ok {
		Throwf("%s: bad arg no. %d: expected a NUMBER", procName, idx+1)
	}
	return n
}

func expectList(procName string, args []Value, idx int) List {
	l, ok := args[idx].(List)
	if !ok {
		Throwf("%s: bad arg no. %d: expected a LIST", procName, idx+1)
	}
	return l
}

func expectString(procName string, args []Value, idx int) String {
	s, ok := args[idx].(String)
	if !ok {
		Throwf("%s: bad arg no. %d: expected a STRING", procName, idx+1)
	}
	return s
}

func expectProc(procName string, args []Value, idx int) *Proc {
	p, ok := args[idx].(*Proc)
	if !ok {
		Throwf("%s: bad arg no. %d: expected a PROCEDURE", procName, idx+1)
	}
	return p
}

func expectAtom(procName string, args []Value, idx int) *Atom {
	a, ok := args[idx].(*Atom)
	if !ok {
		Throwf("%s: bad arg no. %d: expected an ATOM", procName, idx+1)
	}
	return a
}

func expectException(procName string, args []Value, idx int) *Exception {
	e, ok := args[idx].(*Exception)
	if !ok {
		Throwf("%s: bad arg no. %d: expected an EXCEPTION", procName, idx+1)
	}
	return e
}
