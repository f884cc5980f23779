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

import "testing"

func TestReadStringShorthands(t *testing.T) {
	cases := map[string]string{
		`'a`:       "(quote a)",
		"`a":       "(quasiquote a)",
		`~a`:       "(unquote a)",
		`~@a`:      "(splice-unquote a)",
		`(1 2 3)`:  "(1 2 3)",
		`()`:       "()",
		`"hi\nbye"`: `"hi\nbye"`,
	}
	for src, want := range cases {
		v, err := ReadString(src)
		if err != nil {
			t.Fatalf("read %q: %v", src, err)
		}
		if got := Readable(v); got != want {
			t.Fatalf("read %q: expected %s, got %s", src, want, got)
		}
	}
}

func TestReadStringComments(t *testing.T) {
	v, err := ReadString("; a comment\n(+ 1 2) ; trailing")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if Readable(v) != "(+ 1 2)" {
		t.Fatalf("unexpected parse: %s", Readable(v))
	}
}

func TestReadStringUnterminatedList(t *testing.T) {
	_, err := ReadString("(1 2")
	if err != ErrUnterminatedList {
		t.Fatalf("expected ErrUnterminatedList, got %v", err)
	}
}

func TestReadStringUnterminatedString(t *testing.T) {
	_, err := ReadString(`"abc`)
	if err != ErrUnterminatedList {
		t.Fatalf("expected ErrUnterminatedList for an unterminated string, got %v", err)
	}
}

func TestReadAllMultipleForms(t *testing.T) {
	forms, err := ReadAll("(+ 1 2) (def! x 5) x")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
	if Readable(forms[2]) != "x" {
		t.Fatalf("expected x, got %s", Readable(forms[2]))
	}
}

func TestParseAtomLiterals(t *testing.T) {
	env := newTestEnv()
	if got := mustReadable(t, env, "42"); got != "42" {
		t.Fatalf("expected 42, got %s", got)
	}
	if got := mustReadable(t, env, "-7"); got != "-7" {
		t.Fatalf("expected -7, got %s", got)
	}
}
