package main

import "github.com/mattrebelskey/IFS-app/cmd/hj/root"

func main() {
	root.Execute()
}
