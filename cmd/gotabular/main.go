package main

import "github.com/dbsmedya/gotabular/cmd/gotabular/cmd"

func main() {
	cmd.Execute()
}
