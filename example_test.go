package cursor_test

import (
	"fmt"

	"github.com/dacapoday/cursor"
	"github.com/dacapoday/cursor/fixed"
	"github.com/dacapoday/cursor/grow"
)

func Example() {
	// A growable buffer needs no initialization
	var buf grow.Buffer
	cursor.PutUint16(&buf, 0xcafe)
	cursor.PutUint32LE(&buf, 1)
	cursor.PutUint(&buf, 0x010203, 3)
	fmt.Printf("% x\n", buf.Bytes())

	// A fixed view writes into memory owned by the caller
	region := make([]byte, 6)
	view := fixed.View(region)
	cursor.PutSlice(&view, []byte("hello"))
	fmt.Printf("%q remaining=%d\n", region[:5], view.Remaining())

	// Output:
	// ca fe 01 00 00 00 01 02 03
	// "hello" remaining=1
}

func ExampleFill() {
	var buf grow.Buffer
	n := cursor.Fill(&buf, func(p []byte) int {
		return copy(p, "abc")
	})
	fmt.Println(n, string(buf.Bytes()))

	// Output:
	// 3 abc
}
