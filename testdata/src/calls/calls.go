package calls

import "fmt"

func three(a, b, c int) {}

func four(a, b, c, d int) int { return a + b + c + d }

func variadic(format string, args ...any) {}

type Painter struct{}

func (Painter) Rect(x, y, w, h int) {}

type Celsius float64

func calls() {
	three(1, 2, 3)
	four(1, 2, 3, 4) // want "Method calls with 4 or more parameters have param names"
	variadic("%d %d", 1, 2)
	variadic("%d %d %d", 1, 2, 3) // want "Method calls with 4 or more parameters have param names"

	var p Painter
	p.Rect(0, 0, 10, 20) // want "Method calls with 4 or more parameters have param names"

	// Both the outer and the inner calls are reported.
	three(1, 2, four(1, 2, 3, 4))   // want "Method calls with 4 or more parameters have param names"
	four(1, 2, 3, four(1, 2, 3, 4)) // want "Method calls with 4 or more parameters have param names" "Method calls with 4 or more parameters have param names"

	xs := []any{1, 2, 3, 4}
	variadic("%v", xs...)

	fn := func(a, b, c, d int) {}
	fn(1, 2, 3, 4) // want "Method calls with 4 or more parameters have param names"

	fmt.Println("a", "b", "c", "d") // want "Method calls with 4 or more parameters have param names"
	fmt.Println("a", "b")

	_ = Celsius(36.6)
	_ = append([]int{}, 1, 2, 3) // want "Method calls with 4 or more parameters have param names"
}
