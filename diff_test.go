package dumpdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type diffCase struct {
	description string
	left, right string // express test cases as dump strings
	expect      Deltas
}

func runDiffCases(t *testing.T, cases []diffCase, opts ...DiffOption) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			left, err := Parse(c.left)
			if err != nil {
				t.Fatal(err)
			}
			right, err := Parse(c.right)
			if err != nil {
				t.Fatal(err)
			}

			got := Diff(left, right, opts...)
			if diff := cmp.Diff(c.expect, got); diff != "" {
				t.Errorf("delta mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBasicDiffing(t *testing.T) {
	cases := []diffCase{
		{
			"identical flat objects",
			"Person[name=Alice, age=30]",
			"Person[name=Alice, age=30]",
			nil,
		},
		{
			"empty objects",
			"Label[]",
			"Label[]",
			nil,
		},
		{
			"key only in right",
			"Person[name=Alice]",
			"Person[name=Alice, email=a@x.com]",
			Deltas{
				{Op: OpMissingInLeft, Path: "email", Right: String("a@x.com")},
			},
		},
		{
			"key only in left",
			"Person[name=Alice, legacy=true]",
			"Person[name=Alice]",
			Deltas{
				{Op: OpMissingInRight, Path: "legacy", Left: Bool(true)},
			},
		},
		{
			"scalar mismatch",
			"Person[age=30]",
			"Person[age=31]",
			Deltas{
				{Op: OpMismatch, Path: "age", Left: Number(30), Right: Number(31)},
			},
		},
		{
			"nested objects recurse with dotted paths",
			"Foo[a=A[x=1, y=2], b=3]",
			"Foo[a=A[x=9, y=2], b=4]",
			Deltas{
				{Op: OpMismatch, Path: "a.x", Left: Number(1), Right: Number(9)},
				{Op: OpMismatch, Path: "b", Left: Number(3), Right: Number(4)},
			},
		},
		{
			"missing nested key reports the leaf path",
			"Foo[a=A[x=1]]",
			"Foo[a=A[x=1, y=2]]",
			Deltas{
				{Op: OpMissingInLeft, Path: "a.y", Right: Number(2)},
			},
		},
		{
			"whole subtree only in right",
			"Foo[a=1]",
			"Foo[a=1, sub=S[x=1]]",
			Deltas{
				{Op: OpMissingInLeft, Path: "sub", Right: Object{"x": Number(1)}},
			},
		},
		{
			"lists compare as whole values",
			"Foo[tags=[a, b]]",
			"Foo[tags=[a, c]]",
			Deltas{
				{
					Op:    OpMismatch,
					Path:  "tags",
					Left:  List{String("a"), String("b")},
					Right: List{String("a"), String("c")},
				},
			},
		},
		{
			"equal lists produce no delta",
			"Foo[tags=[a, b]]",
			"Foo[tags=[a, b]]",
			nil,
		},
		{
			"object replaced by scalar is a mismatch, not a recursion",
			"Foo[a=A[x=1]]",
			"Foo[a=5]",
			Deltas{
				{Op: OpMismatch, Path: "a", Left: Object{"x": Number(1)}, Right: Number(5)},
			},
		},
		{
			"null versus value",
			"Foo[a=null]",
			"Foo[a=1]",
			Deltas{
				{Op: OpMismatch, Path: "a", Left: Null{}, Right: Number(1)},
			},
		},
	}

	runDiffCases(t, cases)
}

// parse two dumps of the same record taken before & after an edit: the age
// change and the added email must surface, the equal nested address must not
func TestDiffEndToEnd(t *testing.T) {
	p1, err := Parse("Person[name=Alice, age=30, address=Address[city=NYC, zip=<null>]]")
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Parse("Person[name=Alice, age=31, address=Address[city=NYC, zip=<null>], email=a@x.com]")
	if err != nil {
		t.Fatal(err)
	}

	expect := Deltas{
		{Op: OpMismatch, Path: "age", Left: Number(30), Right: Number(31)},
		{Op: OpMissingInLeft, Path: "email", Right: String("a@x.com")},
	}

	if diff := cmp.Diff(expect, Diff(p1, p2)); diff != "" {
		t.Errorf("delta mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffIdempotence(t *testing.T) {
	trees := []Object{
		{},
		{"a": Number(1)},
		{
			"a": Object{"b": Object{"c": Null{}}},
			"d": List{Number(1), Object{"e": Bool(false)}},
			"f": String("x"),
		},
	}

	for _, tree := range trees {
		if dts := Diff(tree, tree); len(dts) != 0 {
			t.Errorf("Diff(x, x) = %v, want empty", dts)
		}
	}
}

func TestDiffSymmetry(t *testing.T) {
	a := Object{
		"shared":   Number(1),
		"changed":  String("left"),
		"onlyLeft": Bool(true),
		"nested":   Object{"x": Number(1), "gone": Null{}},
	}
	b := Object{
		"shared":    Number(1),
		"changed":   String("right"),
		"onlyRight": Bool(false),
		"nested":    Object{"x": Number(2), "new": Null{}},
	}

	pathsByOp := func(dts Deltas) map[Operation][]string {
		m := map[Operation][]string{}
		for _, d := range dts {
			m[d.Op] = append(m[d.Op], d.Path)
		}
		return m
	}

	ab := pathsByOp(Diff(a, b))
	ba := pathsByOp(Diff(b, a))

	if diff := cmp.Diff(ab[OpMissingInLeft], ba[OpMissingInRight]); diff != "" {
		t.Errorf("missing-left(a,b) != missing-right(b,a):\n%s", diff)
	}
	if diff := cmp.Diff(ab[OpMissingInRight], ba[OpMissingInLeft]); diff != "" {
		t.Errorf("missing-right(a,b) != missing-left(b,a):\n%s", diff)
	}
	if diff := cmp.Diff(ab[OpMismatch], ba[OpMismatch]); diff != "" {
		t.Errorf("mismatch paths differ between directions:\n%s", diff)
	}
}

func TestDiffStats(t *testing.T) {
	left := Object{
		"a": Number(1),
		"b": String("x"),
		"n": Object{"gone": Bool(true), "same": Null{}},
	}
	right := Object{
		"a": Number(2),
		"c": String("y"),
		"n": Object{"same": Null{}},
	}

	st := &Stats{}
	dts := Diff(left, right, OptionSetStats(st))

	expect := &Stats{MissingInLeft: 1, MissingInRight: 2, Mismatches: 1}
	if diff := cmp.Diff(expect, st); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if st.Total() != len(dts) {
		t.Errorf("Total() = %d, want %d", st.Total(), len(dts))
	}
	if st.KeyChange() != -1 {
		t.Errorf("KeyChange() = %d, want -1", st.KeyChange())
	}
}
