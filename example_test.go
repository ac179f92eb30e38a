package frpgtk

import (
	"fmt"
)

func ExampleNewEvent() {
	keys, push := NewEvent[string]()

	keys.Subscribe(func(k string) {
		fmt.Println("got", k)
	})

	push("a")
	push("b")

	// Output:
	// got a
	// got b
}

func ExampleHold() {
	edits, push := NewEvent[string]()
	text := Hold("hello", edits)
	fmt.Println(text.Peek())

	push("hell")
	push("hel")
	fmt.Println(text.Peek())

	// Output:
	// hello
	// hel
}

func ExampleBefore() {
	values, push := NewEvent[int]()
	destroyed, destroy := NewEvent[struct{}]()

	Before(values, destroyed).Subscribe(func(v int) {
		fmt.Println(v)
	})

	push(1)
	destroy(struct{}{})
	push(2)

	// Output:
	// 1
}
