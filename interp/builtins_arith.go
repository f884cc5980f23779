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

func installArith(env *Env) {
	Declare(env, Declaration{"+", 2, true, func(args []Value, _ *Env) Value {
		acc := expectNumber("+", args, 0)
		for i := 1; i < len(args); i++ {
			acc += expectNumber("+", args, i)
		}
		return acc
	}})
	Declare(env, Declaration{"-", 2, true, func(args []Value, _ *Env) Value {
		acc := expectNumber("-", args, 0)
		for i := 1; i < len(args); i++ {
			acc -= expectNumber("-", args, i)
		}
		return acc
	}})
	Declare(env, Declaration{"*", 2, true, func(args []Value, _ *Env) Value {
		acc := expectNumber("*", args, 0)
		for i := 1; i < len(args); i++ {
			acc *= expectNumber("*", args, i)
		}
		return acc
	}})
	Declare(env, Declaration{"/", 2, true, func(args []Value, _ *Env) Value {
		acc := expectNumber("/", args, 0)
		for i := 1; i < len(args); i++ {
			d := expectNumber("/", args, i)
			if d == 0 {
				Throwf("/: division by zero")
			}
			acc /= d
		}
		return acc
	}})
	Declare(env, Declaration{"%", 2, false, func(args []Value, _ *Env) Value {
		a := expectNumber("%", args, 0)
		b := expectNumber("%", args, 1)
		if b == 0 {
			Throwf("%%: division by zero")
		}
		return a % b
	}})
	Declare(env, Declaration{"=", 2, false, func(args []Value, _ *Env) Value {
		return boolValue(Equal(args[0], args[1]))
	}})
	Declare(env, Declaration{">", 2, false, func(args []Value, _ *Env) Value {
		a := expectNumber(">", args, 0)
		b := expectNumber(">", args, 1)
		return boolValue(a > b)
	}})
}
