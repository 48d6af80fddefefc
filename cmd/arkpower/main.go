package main

import (
	"flag"
	"os"

	"github.com/ishi-private/arknights-power-calc/internal/app"
)

func main() {
	dataDir := flag.String("dataDir", "", "データディレクトリ (設定ファイルを上書き)")
	flag.Parse()
	os.Exit(app.RunWithOptions(app.Options{DataDir: *dataDir}))
}
