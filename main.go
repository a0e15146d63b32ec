package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/arena/internal/arena/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := arena(); err != nil {
		logrus.Fatal(err)
	}
}

func arena() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
