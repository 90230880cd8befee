//go:build cgo

package main

import (
	"math"
	"os"
	"os/exec"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// testArray returns C descriptor of length over C copy of vals.
func testArray(t *testing.T, length int32, vals ...int32) (*cIntArray, []int32) {
	t.Helper()

	members := allocMembers(vals)
	a := newIntArray(length, members)
	t.Cleanup(func() {
		int_array_free(a)
		freeMembers(members)
	})

	return a, unsafe.Slice((*int32)(members), len(vals))
}

func tailOf(t *testing.T, a *cIntArray) *cIntArray {
	t.Helper()

	res := tail(a)
	require.NotNil(t, res)
	t.Cleanup(func() { int_array_free(res) })

	return res
}

func TestAddOne(t *testing.T) {
	require.Equal(t, int32(2), int32(add_one(1)))
	require.Equal(t, int32(6), int32(add_one(5)))
	require.Equal(t, int32(math.MinInt32), int32(add_one(math.MaxInt32)))
}

func TestHead(t *testing.T) {
	a, _ := testArray(t, 2, 4, 5, 6)
	require.Equal(t, int32(4), int32(head(a)))

	a, _ = testArray(t, 3, 3, 2, 1)
	require.Equal(t, int32(3), int32(head(a)))
}

func TestTail(t *testing.T) {
	a, backing := testArray(t, 3, 7, 8, 9)

	res := tailOf(t, a)
	d := descriptor(res)
	require.Equal(t, int32(2), d.Length)
	require.Equal(t, unsafe.Pointer(&backing[1]), unsafe.Pointer(d.Members))
	require.Equal(t, []int32{8, 9}, d.View().Slice())
	require.Equal(t, int32(8), int32(head(res)))

	res = tailOf(t, res)
	require.Equal(t, int32(1), descriptor(res).Length)
	require.Equal(t, int32(9), int32(head(res)))

	res = tailOf(t, res)
	d = descriptor(res)
	require.Equal(t, int32(0), d.Length)
	require.Equal(t, unsafe.Add(unsafe.Pointer(&backing[0]), 3*4), unsafe.Pointer(d.Members))
	require.PanicsWithError(t, "empty view", func() { head(res) })
	require.PanicsWithError(t, "empty view", func() { tail(res) })

	// Input descriptor is untouched.
	require.Equal(t, int32(3), descriptor(a).Length)
	require.Equal(t, int32(7), int32(head(a)))
}

func TestTailAliasing(t *testing.T) {
	a, backing := testArray(t, 3, 3, 4, 5)
	res := tailOf(t, a)
	require.Equal(t, []int32{4, 5}, descriptor(res).View().Slice())

	backing[2] = 42
	require.Equal(t, []int32{4, 42}, descriptor(res).View().Slice())
}

func TestEmpty(t *testing.T) {
	a, _ := testArray(t, 0)
	require.PanicsWithError(t, "empty view", func() { head(a) })
	require.PanicsWithError(t, "empty view", func() { tail(a) })
}

func TestIntArrayNew(t *testing.T) {
	a, _ := testArray(t, 3, 1, 2, 3)

	b := int_array_new(a.length, a.members)
	t.Cleanup(func() { int_array_free(b) })
	require.Equal(t, *descriptor(a), *descriptor(b))
	require.Equal(t, int32(1), int32(head(b)))

	empty := int_array_new(0, nil)
	t.Cleanup(func() { int_array_free(empty) })
	require.Zero(t, descriptor(empty).Length)
	require.Nil(t, descriptor(empty).Members)
}

const abortEnv = "LIBSIMPLE_TEST_ABORT"

// TestAbort checks that empty head and tail terminate the process.
func TestAbort(t *testing.T) {
	if op := os.Getenv(abortEnv); op != "" {
		a, _ := testArray(t, 0)
		switch op {
		case "head":
			head(a)
		case "tail":
			tail(a)
		}
		t.Fatalf("%s returned", op)
	}

	for _, op := range []string{"head", "tail"} {
		t.Run(op, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestAbort$")
			cmd.Env = append(os.Environ(), abortEnv+"="+op)
			out, err := cmd.CombinedOutput()

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr, "%s", out)
			require.Equal(t, 2, exitErr.ExitCode())
			require.Contains(t, string(out), "panic: empty view")
		})
	}
}
