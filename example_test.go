package intern_test

import (
	"fmt"

	"github.com/xgzlucario/intern"
)

func Example() {
	p := intern.Strings()

	hello, _ := p.Intern("hello")
	world, _ := p.Intern("world")
	again, _ := p.Intern("hello")
	s, _ := p.Resolve(world)

	fmt.Println(hello, world, again, s)
	// Output: 0 1 0 world
}

func ExampleBuilder_BTree() {
	b, err := intern.NewBuilder[string]().BTree()
	if err != nil {
		panic(err)
	}
	p, _ := b.Capacity(16).Build()

	var toks []intern.Token
	for _, s := range []string{"foo", "bar", "baz", "foo"} {
		tok, _ := p.Intern(s)
		toks = append(toks, tok)
	}
	fmt.Println(toks)

	p.Ascend(func(tok intern.Token, s string) bool {
		fmt.Println(tok, s)
		return true
	})
	// Output:
	// [0 1 2 0]
	// 1 bar
	// 2 baz
	// 0 foo
}

func ExampleBuilder_Hash() {
	_, err := intern.NewBuilder[[]int]().Hash()
	fmt.Println(err)
	// Output: intern: hash pool: unsupported capability: type has no hash consistent with equality: []int
}
