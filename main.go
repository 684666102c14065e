package main

import "github.com/DnvLikhitha/FitFlex/cmd/fitflex"

func main() {
	fitflex.Execute()
}
