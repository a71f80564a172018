package configured

func generated() {
	other(1, 2, 3, 4)
}
