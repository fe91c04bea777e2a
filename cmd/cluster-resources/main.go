package main

import "github.com/openshift-assisted/cluster-resources/cmd/cluster-resources/cmd"

func main() {
	cmd.Execute()
}
