// Command loyalty 酒吧忠誠度服務：HTTP API、資料庫遷移與維運指令。
package main

import (
	"fmt"
	"os"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
