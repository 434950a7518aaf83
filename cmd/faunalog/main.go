// faunalog CLI - renders captured Fauna client exchanges as debug logs.
package main

import "github.com/faunalog/faunalog/pkg/cli"

func main() {
	cli.Execute()
}
