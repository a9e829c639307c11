package trie

import "fmt"

func Example() {
	t := New("cat", "car", "cart", "dog")

	fmt.Println(t.Contains("car"), t.Contains("ca"))
	fmt.Println(t.Complete("car"))
	fmt.Println(t.Strings(), t.Size())

	// Output:
	// true false
	// [car cart]
	// [cat car cart dog] 4
}

func Example_empty() {
	t := New()
	fmt.Println(t.IsEmpty(), t.Strings(), t.Contains(""), t.Complete("x"))
	// Output:
	// true [] false []
}

func ExampleTree_Suggest() {
	t := New("cat", "car", "cart", "dog", "cot")
	fmt.Println(t.Suggest("cst", 0))
	fmt.Println(t.SuggestWithin("dgo", 2, 1))
	// Output:
	// [cat cot]
	// [dog]
}

func ExampleTree_Walk() {
	t := New("tea", "ten", "ted", "to")
	t.Walk("te", func(s string) bool {
		fmt.Println(s)
		return s != "ten"
	})
	// Output:
	// tea
	// ten
}
