// The vs-stringer program shows stringer and caseiter composing on one enum:
// stringer renders the case names, caseiter walks the cases. Neither file is
// written by hand; both generators run from the directives in model.go.
package main

import "fmt"

func main() {
	fmt.Println("# Case 1: Walk the week in declaration order")
	fmt.Println()

	it := AllWeekdayCases()
	for d := it.Next(); d != nil; d = it.Next() {
		fmt.Printf("\t%d: %s\n", int(*d), *d)
	}

	fmt.Println()
	fmt.Println("# Case 2: Successor queries")
	fmt.Println()

	fmt.Printf("\tafter %s comes %s\n", Friday, *Friday.Next())
	fmt.Printf("\t%s has no successor: %v\n", Sunday, Sunday.Next())

	fmt.Println()
	fmt.Println("# Case 3: Range over the cases")
	fmt.Println()

	for d := range AllWeekdayCases().Seq() {
		fmt.Printf("\t%s\n", d)
	}
}
