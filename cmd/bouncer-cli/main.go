package main

import (
	"k8s.io/klog/v2"

	"github.com/neutree-ai/bouncer-probe/cmd/bouncer-cli/app/cmd"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd.Execute()
}
