package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	require.Equal(t, hello1.HashKey(), hello2.HashKey())
	require.Equal(t, diff1.HashKey(), diff2.HashKey())
	require.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerBooleanHashKeysDontCollide(t *testing.T) {
	one := &Integer{Value: 1}
	tru := &Boolean{Value: true}

	require.NotEqual(t, one.HashKey(), tru.HashKey())
}

func TestIsHashable(t *testing.T) {
	require.True(t, IsHashable(&Integer{Value: 1}))
	require.True(t, IsHashable(&Boolean{Value: true}))
	require.True(t, IsHashable(&String{Value: "x"}))
	require.False(t, IsHashable(&Array{}))
	require.False(t, IsHashable(&Null{}))
}

func TestBuiltinsOrderIsStable(t *testing.T) {
	names := []string{"len", "first", "rest", "last", "push", "puts"}
	for i, name := range names {
		require.Equal(t, name, Builtins[i].Name)
	}
}
