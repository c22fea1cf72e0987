package wideint_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/momenta/wideint"
)

// ExampleUInt192_AddSquare shows exact sum-of-squares accumulation past the
// int64 range: the narrow read fails loudly, the exact read never does.
func ExampleUInt192_AddSquare() {
	var ss wideint.UInt192
	ss.AddSquare(math.MaxInt64)
	ss.AddSquare(math.MaxInt64)

	if _, err := ss.Int64(); errors.Is(err, wideint.ErrOverflow) {
		fmt.Println("int64 read overflows")
	}
	fmt.Println(ss.BigInt())
	// Output:
	// int64 read overflows
	// 170141183460469231694793815568465002498
}

// ExampleInt128_Add demonstrates a signed sum crossing zero.
func ExampleInt128_Add() {
	var sum wideint.Int128
	sum.Add(40)
	sum.Add(-100)
	sum.Add(19)

	v, _ := sum.Int64()
	fmt.Println(v)
	// Output:
	// -41
}
