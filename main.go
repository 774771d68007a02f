package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/corners/internal/corners/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := corners(); err != nil {
		logrus.Fatal(err)
	}
}

func corners() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
