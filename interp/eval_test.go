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

func newTestEnv() *Env {
	env := NewEnv(nil)
	InstallCoreBuiltins(env)
	return env
}

func evalString(t *testing.T, env *Env, src string) Value {
	t.Helper()
	form, err := ReadString(src)
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	return Eval(form, env)
}

func mustReadable(t *testing.T, env *Env, src string) string {
	t.Helper()
	return Readable(evalString(t, env, src))
}

func TestSymbolIdentity(t *testing.T) {
	if Intern("foo") != Intern("foo") {
		t.Fatalf("Intern should return the same pointer for equal names")
	}
	if Intern("foo") == Intern("bar") {
		t.Fatalf("Intern should return distinct pointers for distinct names")
	}
}

func TestSingletonUniqueness(t *testing.T) {
	env := newTestEnv()
	a := evalString(t, env, "nil")
	b := evalString(t, env, "nil")
	if a != b {
		t.Fatalf("nil did not evaluate to the same identity twice")
	}
	if evalString(t, env, "true") != True {
		t.Fatalf("true did not evaluate to the True singleton")
	}
	if evalString(t, env, "false") != False {
		t.Fatalf("false did not evaluate to the False singleton")
	}
}

func TestEmptyListTruthiness(t *testing.T) {
	got := mustReadable(t, newTestEnv(), "(if () 'a 'b)")
	if got != "a" {
		t.Fatalf("expected a, got %s", got)
	}
}

func TestEmptyListSelfEvaluates(t *testing.T) {
	env := newTestEnv()
	got := evalString(t, env, "()")
	l, ok := got.(List)
	if !ok || len(l) != 0 {
		t.Fatalf("() should self-evaluate to the empty list, got %#v", got)
	}
}

func TestRoundTripReadPrint(t *testing.T) {
	cases := []string{
		`42`,
		`"hello world"`,
		`foo`,
		`(1 2 3)`,
		`(a (b c) "d")`,
		`()`,
	}
	for _, src := range cases {
		v, err := ReadString(src)
		if err != nil {
			t.Fatalf("read %q: %v", src, err)
		}
		printed := Readable(v)
		v2, err := ReadString(printed)
		if err != nil {
			t.Fatalf("re-read %q (from %q): %v", printed, src, err)
		}
		if !Equal(v, v2) {
			t.Fatalf("round trip mismatch for %q: %v != %v", src, v, v2)
		}
	}
}

func TestListEquality(t *testing.T) {
	a, _ := ReadString("(1 2 (3 \"x\"))")
	b, _ := ReadString("(1 2 (3 \"x\"))")
	c, _ := ReadString("(1 2 (3 \"y\"))")
	if !Equal(a, a) {
		t.Fatalf("= should be reflexive")
	}
	if !Equal(a, b) || !Equal(b, a) {
		t.Fatalf("= should be symmetric for structurally equal lists")
	}
	if Equal(a, c) {
		t.Fatalf("= should distinguish differing elements")
	}
}

func TestLexicalCapture(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(def! mk (lambda (x) (lambda () x)))")
	got := mustReadable(t, env, "((mk 7))")
	if got != "7" {
		t.Fatalf("expected 7, got %s", got)
	}
}

func TestTailCallOptimizationDeep(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(def! cnt (lambda (n) (if (= n 0) 'done (cnt (- n 1)))))")
	got := mustReadable(t, env, "(cnt 1000000)")
	if got != "done" {
		t.Fatalf("expected done, got %s", got)
	}
}

func TestTailCallOptimizationLetAndDo(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, `(def! loop (lambda (n acc)
		(let* ((n2 n))
		  (do
		    (if (= n2 0) acc (loop (- n2 1) (+ acc 1)))))))`)
	got := mustReadable(t, env, "(loop 200000 0)")
	if got != "200000" {
		t.Fatalf("expected 200000, got %s", got)
	}
}

func TestMacroFixpointTerminates(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(defmacro! unless (lambda (c a b) (list 'if c b a)))")
	got := mustReadable(t, env, "(unless false 'yes 'no)")
	if got != "yes" {
		t.Fatalf("expected yes, got %s", got)
	}
}

func TestMacroexpandIsSingleStep(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(defmacro! double (lambda (x) (list 'list x x)))")
	got := evalString(t, env, "(macroexpand (double 5))")
	want, _ := ReadString("(list 5 5)")
	if !Equal(got, want) {
		t.Fatalf("expected one expansion step (list 5 5), got %v", Readable(got))
	}
}

func TestExceptionScopeCaught(t *testing.T) {
	env := newTestEnv()
	got := mustReadable(t, env, `(try* (throw 42) (catch* e e))`)
	if got != "42" {
		t.Fatalf("expected 42, got %s", got)
	}
}

func TestExceptionPropagatesOutsideTryStar(t *testing.T) {
	env := newTestEnv()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected an uncaught throw to propagate as a panic")
		}
	}()
	evalString(t, env, `(throw "boom")`)
}

func TestErrorStillPropagatesInsideTryStar(t *testing.T) {
	env := newTestEnv()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a static error inside try* to still propagate")
		}
		if _, ok := r.(*failure); !ok {
			t.Fatalf("expected a *failure panic, got %#v", r)
		}
	}()
	evalString(t, env, `(try* (if) (catch* e e))`)
}

func TestUnboundSymbolIsCatchable(t *testing.T) {
	env := newTestEnv()
	got := mustReadable(t, env, `(try* no-such-symbol (catch* e e))`)
	if got != `"'no-such-symbol' not found"` {
		t.Fatalf("unexpected catch payload: %s", got)
	}
}

func TestScenarioArithmeticAndTCO(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(def! cnt (lambda (n) (if (= n 0) 'done (cnt (- n 1)))))")
	if got := mustReadable(t, env, "(cnt 100000)"); got != "done" {
		t.Fatalf("expected done, got %s", got)
	}
}

func TestScenarioClosureCapture(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(def! mk (lambda (x) (lambda () x)))")
	if got := mustReadable(t, env, "((mk 7))"); got != "7" {
		t.Fatalf("expected 7, got %s", got)
	}
}

func TestScenarioVariadicAndApply(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(def! l (lambda (& xs) xs))")
	if got := mustReadable(t, env, "(apply l 1 2 '(3 4))"); got != "(1 2 3 4)" {
		t.Fatalf("expected (1 2 3 4), got %s", got)
	}
}

func TestScenarioQuasiquoteSplice(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(def! lst '(b c))")
	if got := mustReadable(t, env, "`(a ~@lst d)"); got != "(a b c d)" {
		t.Fatalf("expected (a b c d), got %s", got)
	}
}

func TestScenarioMacro(t *testing.T) {
	env := newTestEnv()
	evalString(t, env, "(defmacro! unless (lambda (c a b) (list 'if c b a)))")
	if got := mustReadable(t, env, "(unless false 'yes 'no)"); got != "yes" {
		t.Fatalf("expected yes, got %s", got)
	}
}

func TestScenarioException(t *testing.T) {
	env := newTestEnv()
	got := mustReadable(t, env, `(try* (throw "boom") (catch* e (str "caught " e)))`)
	if got != `"caught boom"` {
		t.Fatalf("expected \"caught boom\", got %s", got)
	}
}
