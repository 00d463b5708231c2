package main

import "github.com/jjjules/all-of-the-rythmns/cmd"

func main() {
	cmd.Execute()
}
