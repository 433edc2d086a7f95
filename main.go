package main

import "github.com/skeletool/compose/cmd/compose"

func main() { compose.Execute() }
