package render_test

import (
	"fmt"

	"github.com/katalvlaran/sortnet/generate"
	"github.com/katalvlaran/sortnet/render"
)

func ExampleText() {
	nw, err := generate.BatcherOddEvenMerge(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(render.Text(nw))
	// Output:
	// 0 -o--o------
	// 1 -o--|-o--o-
	// 2 -o--o-|--o-
	// 3 -o----o----
}
