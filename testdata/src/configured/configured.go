package configured

type Logger struct{}

func (*Logger) Log(level int, msg string, key string, value any) {}

func Emit(a, b, c, d int) {}

func other(a, b, c, d int) {}

func configured() {
	var l Logger
	l.Log(1, "msg", "key", 42)
	Emit(1, 2, 3, 4)
	other(1, 2, 3, 4) // want "Method calls with 4 or more parameters have param names"
}
