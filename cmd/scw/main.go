// SPDX-License-Identifier: MIT

package main

import (
	"os"
)

func main() {
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}
