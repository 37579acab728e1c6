package assert

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	fmt2 "github.com/qjpcpu/container.v2/fmt"
)

func muteOutput(t *testing.T) *bytes.Buffer {
	buf := new(bytes.Buffer)
	old := fmt2.Output
	fmt2.Output = buf
	t.Cleanup(func() { fmt2.Output = old })
	return buf
}

func TestRequire(t *testing.T) {
	require.NotPanics(t, func() { Require(true, "PopFront", "list is empty") })

	err := Recover(func() { Require(false, "PopFront", "list is empty") })
	require.NotNil(t, err)
	require.Equal(t, "PopFront", err.Op)
	require.Equal(t, "PopFront: list is empty", err.Error())
}

func TestRequireVerbose(t *testing.T) {
	buf := muteOutput(t)
	Verbose = true
	defer func() { Verbose = false }()
	require.True(t, AllowPanic(func() { Require(false, "EraseAfter", "position is end") }))
	require.True(t, strings.Contains(buf.String(), "EraseAfter"), buf.String())
}

func TestRecoverPropagatesOtherPanics(t *testing.T) {
	require.PanicsWithValue(t, "other", func() {
		Recover(func() { panic("other") })
	})
	require.Nil(t, Recover(func() {}))
}

type myErr struct{}

func (*myErr) Error() string { return "my" }

func TestShouldBeNil(t *testing.T) {
	muteOutput(t)
	var typedNil *myErr
	require.False(t, AllowPanic(func() { ShouldBeNil(nil) }))
	require.False(t, AllowPanic(func() { ShouldBeNil(typedNil) }))
	require.True(t, AllowPanic(func() { ShouldBeNil(errors.New("x"), "load %s", "conf") }))
}

func TestShouldBeTrueAndEqual(t *testing.T) {
	muteOutput(t)
	require.True(t, AllowPanic(func() { ShouldBeTrue(false, "bad") }))
	require.False(t, AllowPanic(func() { ShouldBeTrue(true) }))
	require.True(t, AllowPanic(func() { ShouldEqual([]int{1}, []int{2}) }))
	require.False(t, AllowPanic(func() { ShouldEqual([]int{1}, []int{1}) }))
}
