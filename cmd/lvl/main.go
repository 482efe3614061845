package main

import "github.com/itskrishnabajaj/LevelUp/cmd/lvl/root"

func main() {
	root.Execute()
}
