package composites

type Point struct {
	X, Y, Z, W int
}

type Pair struct {
	A, B int
}

type Alias = Point

func literals() {
	_ = Point{1, 2, 3, 4} // want "Method calls with 4 or more parameters have param names"
	_ = Point{X: 1, Y: 2, Z: 3, W: 4}
	_ = &Point{1, 2, 3, 4} // want "Method calls with 4 or more parameters have param names"
	_ = Alias{1, 2, 3, 4}  // want "Method calls with 4 or more parameters have param names"
	_ = Pair{1, 2}
	_ = Point{X: 1}

	_ = []int{1, 2, 3, 4}
	_ = [4]int{1, 2, 3, 4}
	_ = map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}

	_ = []Point{{1, 2, 3, 4}} // want "Method calls with 4 or more parameters have param names"
	_ = []*Point{{X: 1, Y: 2, Z: 3, W: 4}}

	_ = struct{ A, B, C, D string }{"a", "b", "c", "d"} // want "Method calls with 4 or more parameters have param names"
}
