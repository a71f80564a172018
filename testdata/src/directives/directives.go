package directives

func four(a, b, c, d int) {}

func directives() {
	four(1, 2, 3, 4) //namedparams:ignore

	//namedparams:ignore -- legacy signature
	four(1, 2, 3, 4)

	four(1, 2, 3, 4) //nolint:namedparams

	// namedparams:ignore
	four(1, 2, 3, 4)

	four(1, 2, 3, 4) //nolint:errcheck,namedparams

	four(1, 2, 3, 4) //nolint:namedparamsx // want "Method calls with 4 or more parameters have param names"

	// Directive works only for the line next to it.
	four(1, 2, 3, 4) // want "Method calls with 4 or more parameters have param names"
}
