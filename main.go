package main

import "github.com/probuilddigital1-star/nourish/cmd/nourish"

func main() {
	nourish.Execute()
}
